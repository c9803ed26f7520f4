// Package interp executes the small programs stored in window
// filesystems. Programs are parsed up front; execution then advances one
// statement per Tick so the scheduler can interleave several programs on
// a single thread. A program that calls input() does not block: Tick
// returns AwaitInput and the interpreter resumes after ProvideInput.
package interp
