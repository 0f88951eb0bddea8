/*
Package session orchestrates concurrent access to per-user sessions.

The manager serializes all work on a single user's session with
ref-counted in-process locks, optionally paired with a distributed locker
for multi-replica deployments, and routes events through the transition
engine under that lock so a user's second message always sees the state
produced by their first.
*/
package session
