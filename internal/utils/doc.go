// Package utils provides small helpers shared by the server and the client:
// JSON responses, the resty client factory and trace ids.
package utils
