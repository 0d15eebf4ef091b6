package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestRequestDataRoundTrip(t *testing.T) {
	ctx := context.Background()
	if GetRequestData(ctx) != nil {
		t.Fatalf("expected no request data on a bare context")
	}
	uid := uuid.New()
	ctx = WithRequestData(ctx, &RequestData{UserID: uid})
	rd := GetRequestData(ctx)
	if rd == nil || rd.UserID != uid || rd.StudentID != uuid.Nil {
		t.Fatalf("unexpected request data: %+v", rd)
	}
}

func TestTraceDataRoundTrip(t *testing.T) {
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t", RequestID: "r"})
	td := GetTraceData(ctx)
	if td == nil || td.TraceID != "t" || td.RequestID != "r" {
		t.Fatalf("unexpected trace data: %+v", td)
	}
}
