/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package main

import (
	"github.com/josephgoksu/langgpt-assistant/cmd"
	"github.com/josephgoksu/langgpt-assistant/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
