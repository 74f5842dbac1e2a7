// Package classifier pattern-matches single Solana transaction log lines
// against the shapes the runtime emits: invocation starts, invocation ends,
// and program-authored messages. Classification is a pure function over
// the line text, with no state and no I/O. Policy for lines outside the
// grammar is decided by the caller, not here.
package classifier

import (
	"encoding/base64"
	"strings"
)

// Kind is the classification of a single log line.
type Kind int

const (
	Unrelated Kind = iota // no stack or event effect; line is consumed
	Invoke                // a program begins executing (push)
	Complete              // the topmost invocation finished (pop)
	Data                  // an authored message carrying a decodable payload
	Malformed             // line does not fit the expected log grammar
)

// CPIProgram is the placeholder frame identifier for a cross-program
// invocation whose specific program is not tracked. Only its presence on
// the stack matters: it marks that a non-target frame is executing.
const CPIProgram = "cpi"

// dataPrefix precedes the base64 payload of an authored message. The
// payload region starts at this fixed offset.
const dataPrefix = "Program log: "

// terminalTokens is the closed set of markers that end the topmost
// invocation. Both forms pop the execution stack; the matched token is
// carried on the result for callers that care which one it was.
var terminalTokens = map[string]bool{
	"success": true,
	"failed":  true,
}

// Result is the outcome of classifying one line.
type Result struct {
	Kind    Kind
	Program string // Invoke: identifier to push onto the stack
	Token   string // Complete: the terminal marker that matched
	Payload []byte // Data: decoded payload bytes
}

// ClassifyTarget classifies a line while the watched program occupies the
// top of the execution stack. Authored-message lines are payload-decoded
// here; a payload that is not valid base64 is tolerated and classifies as
// Unrelated. Lines without the authored-message prefix fall through to the
// system rules.
func ClassifyTarget(line, target string) Result {
	if strings.HasPrefix(line, "Program log:") {
		var region string
		if len(line) > len(dataPrefix) {
			region = line[len(dataPrefix):]
		}
		payload, err := base64.StdEncoding.DecodeString(region)
		if err != nil {
			return Result{Kind: Unrelated}
		}
		return Result{Kind: Data, Payload: payload}
	}
	return ClassifySystem(line, target)
}

// ClassifySystem classifies a line while some other program is executing,
// and serves as the fallback for non-message lines in ClassifyTarget.
// Rules apply in order to logStart, the substring before the first colon:
//
//  1. second space-token after the "Program " marker is terminal → Complete
//  2. logStart begins "Program <target> invoke" → Invoke(target)
//  3. logStart contains "invoke" → Invoke(CPIProgram)
//  4. otherwise → Unrelated
//
// A logStart without a "Program " marker, or without a token after the
// identifier, is Malformed.
func ClassifySystem(line, target string) Result {
	logStart, _, _ := strings.Cut(line, ":")
	_, rest, found := strings.Cut(logStart, "Program ")
	if !found {
		return Result{Kind: Malformed}
	}
	tokens := strings.Split(rest, " ")
	if len(tokens) < 2 {
		return Result{Kind: Malformed}
	}
	if terminalTokens[tokens[1]] {
		return Result{Kind: Complete, Token: tokens[1]}
	}
	if strings.HasPrefix(logStart, "Program "+target+" invoke") {
		return Result{Kind: Invoke, Program: target}
	}
	if strings.Contains(logStart, "invoke") {
		return Result{Kind: Invoke, Program: CPIProgram}
	}
	return Result{Kind: Unrelated}
}
