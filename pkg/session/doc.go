/*
Package session orchestrates session persistence for the filing dialogue.

It layers per-session locking over a ports.SessionStore so that concurrent
turns for the same session id are processed one at a time, and optionally
extends that guarantee across replicas with a distributed locker.
*/
package session
