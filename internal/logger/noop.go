package logger

import "time"

// nop discards every entry. Tests and library callers without a logger use it.
type nop struct{}

// NewNoOp returns a logger that discards everything.
func NewNoOp() Interface { return nop{} }

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) Fatal(string, ...any) {}
func (nop) Sync() error          { return nil }

func (n nop) With(...any) Interface                { return n }
func (n nop) WithComponent(string) Interface       { return n }
func (n nop) WithError(error) Interface            { return n }
func (n nop) WithDuration(time.Duration) Interface { return n }
