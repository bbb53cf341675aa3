package reply_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"deal_factory/pkg/errcodes"
	"deal_factory/pkg/httpx/reply"
	"deal_factory/pkg/rest"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   rest.ErrorCode
		wantMsg    string
	}{
		{
			name: "invalid argument",
			err: failure.NewInvalidArgumentError("bad",
				failure.WithCode(errcodes.InvalidFinancialInput),
				failure.WithDescription("price must be positive"),
			),
			wantStatus: http.StatusBadRequest,
			wantCode:   rest.ErrorCode(errcodes.InvalidFinancialInput),
			wantMsg:    "price must be positive",
		},
		{
			name:       "plain error echoes message",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   rest.ErrorCode(errcodes.InternalServerError),
			wantMsg:    "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			w := httptest.NewRecorder()
			reply.Error(context.Background(), w, tt.err)

			r.Equal(tt.wantStatus, w.Code)

			var body rest.Error
			r.NoError(jsoniter.NewDecoder(w.Body).Decode(&body))
			r.Equal(tt.wantCode, body.Code)
			r.Equal(tt.wantMsg, body.Message)
			r.Equal("unsupported", body.SupportID)
		})
	}
}

func TestStatus(t *testing.T) {
	r := require.New(t)

	w := httptest.NewRecorder()
	reply.Status(context.Background(), w, http.StatusNotFound, errcodes.PropertyNotFound, "property not found")

	r.Equal(http.StatusNotFound, w.Code)
	r.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body rest.Error
	r.NoError(jsoniter.NewDecoder(w.Body).Decode(&body))
	r.Equal(rest.ErrorCode(errcodes.PropertyNotFound), body.Code)
	r.Equal("property not found", body.Message)
}
