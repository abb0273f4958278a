package core

import (
	"os"
	"strings"
)

// Env abstracts the source of the raw argument list for testing. The only
// capability this system consumes from its environment is the read-once
// token snapshot.
type Env interface {
	Args() []string
}

// OsEnv is the production Env. It snapshots os.Args at construction so the
// rest of the pipeline never touches live environment state.
type OsEnv struct {
	args []string
}

// NewOsEnv captures the current process arguments into an immutable
// snapshot and returns an Env over it.
func NewOsEnv() *OsEnv {
	args := make([]string, len(os.Args))
	copy(args, os.Args)

	return &OsEnv{args: args}
}

// Args returns the captured argument snapshot.
func (e *OsEnv) Args() []string {
	return e.args
}

// StaticEnv is an Env over a fixed argument list, for tests.
type StaticEnv struct {
	args []string
}

// NewStaticEnv returns an Env that serves the given tokens.
func NewStaticEnv(args []string) *StaticEnv {
	return &StaticEnv{args: args}
}

// Args returns the fixed argument list.
func (e *StaticEnv) Args() []string {
	return e.args
}

// FromEnv builds a Command from an environment's argument snapshot.
func FromEnv(env Env) Command {
	return Build(env.Args())
}

// CmdString joins an environment's raw argument list with single spaces,
// useful for logging the exact invocation. It performs no classification.
func CmdString(env Env) string {
	return strings.Join(env.Args(), " ")
}
