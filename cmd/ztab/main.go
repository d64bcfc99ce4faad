// cmd/ztab/main.go
package main

import (
	"ztab/internal/app"
	"ztab/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
