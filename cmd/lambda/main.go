// Command lambda serves the same router behind API Gateway proxy events.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/yungbote/bacprep-backend/internal/app"
)

func main() {
	log, err := app.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	a, err := app.New(context.Background(), log)
	if err != nil {
		log.Error("failed to initialize app", "error", err)
		log.Sync()
		os.Exit(1)
	}
	defer a.Close()

	lambda.Start(newProxy(a.Router))
}
