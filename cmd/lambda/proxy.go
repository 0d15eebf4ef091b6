package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type proxyHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// newProxy routes API Gateway REST proxy events through the gin engine.
func newProxy(engine *gin.Engine) proxyHandler {
	return ginadapter.New(engine).ProxyWithContext
}
