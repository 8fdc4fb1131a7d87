// Package web owns the browser-facing homeschool planning UX.
//
// It composes the public and protected feature modules onto one HTTP
// handler, resolves the signed-in principal once per request, and hosts
// the server lifecycle used by the server command.
package web
