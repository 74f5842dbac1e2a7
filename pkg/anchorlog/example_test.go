package anchorlog_test

import (
	"encoding/base64"
	"fmt"

	"github.com/crimson-sun/anchorlog/pkg/anchorlog"
)

func Example() {
	target := "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"

	p, err := anchorlog.New(target, anchorlog.WithDecoder(
		anchorlog.DecodeFunc(func(payload []byte) (anchorlog.Event, bool) {
			return anchorlog.Event{Name: string(payload)}, true
		})))
	if err != nil {
		fmt.Println(err)
		return
	}

	logs := []string{
		"Program " + target + " invoke [1]",
		"Program log: " + base64.StdEncoding.EncodeToString([]byte("transfer")),
		"Program " + target + " success",
	}

	err = p.ParseLogs(logs, func(ev anchorlog.Event) {
		fmt.Println(ev.Name, ev.Program)
	})
	if err != nil {
		fmt.Println(err)
	}

	// Output:
	// transfer 4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T
}
