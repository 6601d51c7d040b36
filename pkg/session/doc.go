/*
Package session drives transition tables on behalf of many concurrent sessions.

A Manager binds one fsm.Spec to a ports.CursorStore. Each Fire loads the cursor,
applies the trigger and persists the result while holding a per-session lock, so two
requests for the same session never interleave. An illegal trigger is reported to the
caller and nothing is persisted.
*/
package session
