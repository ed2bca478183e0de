// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the session lifecycle of asking whether to
// build a robot, building it, and asking again. It is decoupled from any
// specific entrypoint.
package app
