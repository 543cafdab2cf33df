package main

import "runtime"

// shellCommand wraps the provided script in the platform's shell.
func shellCommand(script string) []string {
	//goland:noinspection GoBoolExpressions
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/c", script}
	}
	return []string{"sh", "-c", script}
}
