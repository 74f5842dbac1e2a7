// Package anchorlog extracts structured Anchor events from Solana
// transaction logs. It reconstructs the cross-program invocation stack
// from the ordered log lines and decodes only the messages the target
// program authored during its own execution.
//
// Quick start:
//
//	type Transfer struct {
//	    Amount uint64
//	    Memo   string
//	}
//
//	p, err := anchorlog.New(programID,
//	    anchorlog.WithEvent("Transfer", func() any { return new(Transfer) }))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = p.ParseLogs(logs, func(ev anchorlog.Event) {
//	    t := ev.Data.(*Transfer)
//	    fmt.Println(ev.Name, t.Amount)
//	})
//
// A Parser holds no mutable state across calls and is safe for concurrent
// use. Decoded events are delivered to the callback one at a time,
// synchronously, in line order.
package anchorlog
