package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starforge/starforge-go/internal/application/common"
)

type pingRequest struct {
	Payload string
}

type pongResponse struct {
	Payload string
}

type pingHandler struct {
	fail error
}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if h.fail != nil {
		return nil, h.fail
	}
	req := request.(*pingRequest)
	return &pongResponse{Payload: req.Payload}, nil
}

func TestMediator_SendDispatchesToRegisteredHandler(t *testing.T) {
	// Arrange
	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{}))

	// Act
	resp, err := med.Send(context.Background(), &pingRequest{Payload: "hello"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &pongResponse{Payload: "hello"}, resp)
}

func TestMediator_SendUnregisteredRequest(t *testing.T) {
	med := common.NewMediator()

	_, err := med.Send(context.Background(), &pingRequest{})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestMediator_SendNilRequest(t *testing.T) {
	med := common.NewMediator()

	_, err := med.Send(context.Background(), nil)

	assert.ErrorContains(t, err, "request cannot be nil")
}

func TestMediator_DuplicateRegistrationRejected(t *testing.T) {
	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{}))

	err := common.RegisterHandler[*pingRequest](med, &pingHandler{})

	assert.ErrorContains(t, err, "already registered")
}

func TestMediator_MiddlewareWrapsInOrder(t *testing.T) {
	// Arrange - two middlewares recording entry order
	med := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{}))

	var trace []string
	med.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		trace = append(trace, "outer")
		return next(ctx, request)
	})
	med.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		trace = append(trace, "inner")
		return next(ctx, request)
	})

	// Act
	_, err := med.Send(context.Background(), &pingRequest{})

	// Assert - first registered runs outermost
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, trace)
}

func TestMediator_MiddlewareSeesHandlerError(t *testing.T) {
	// Arrange
	med := common.NewMediator()
	handlerErr := errors.New("boom")
	require.NoError(t, common.RegisterHandler[*pingRequest](med, &pingHandler{fail: handlerErr}))

	var seen error
	med.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		resp, err := next(ctx, request)
		seen = err
		return resp, err
	})

	// Act
	_, err := med.Send(context.Background(), &pingRequest{})

	// Assert
	assert.ErrorIs(t, err, handlerErr)
	assert.ErrorIs(t, seen, handlerErr)
}
