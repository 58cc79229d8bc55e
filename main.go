package main

import (
	"context"

	"github.com/data-yaml/qen/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
