package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestTargetHandlers(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		mockSetup    func(m *MockTargetEditor)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "add",
			method: http.MethodPost,
			path:   "/targets",
			body:   `{"code":"GBP"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().AddTarget(gomock.Any(), "GBP").Return(models.NewTarget("GBP"), nil)
				m.EXPECT().State().Return(testState(), models.NoFocus)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "add fifth",
			method: http.MethodPost,
			path:   "/targets",
			body:   `{"code":"CAD"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().AddTarget(gomock.Any(), "CAD").Return(models.Target{}, services.ErrTargetLimit)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrTargetLimit.Error(),
		},
		{
			name:   "add duplicate",
			method: http.MethodPost,
			path:   "/targets",
			body:   `{"code":"EUR"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().AddTarget(gomock.Any(), "EUR").Return(models.Target{}, services.ErrDuplicateCurrency)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrDuplicateCurrency.Error(),
		},
		{
			name:         "add invalid json",
			method:       http.MethodPost,
			path:         "/targets",
			body:         `not json`,
			mockSetup:    func(m *MockTargetEditor) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
		{
			name:   "edit amount",
			method: http.MethodPut,
			path:   "/targets/" + id.String(),
			body:   `{"amount":"92"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().EditTarget(gomock.Any(), id, "92").Return(nil)
				m.EXPECT().State().Return(testState(), models.TargetFocus(id))
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "edit unknown target",
			method: http.MethodPut,
			path:   "/targets/" + id.String(),
			body:   `{"amount":"92"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().EditTarget(gomock.Any(), id, "92").Return(services.ErrTargetNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  services.ErrTargetNotFound.Error(),
		},
		{
			name:         "edit malformed id",
			method:       http.MethodPut,
			path:         "/targets/not-a-uuid",
			body:         `{"amount":"92"}`,
			mockSetup:    func(m *MockTargetEditor) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid target id",
		},
		{
			name:   "select currency",
			method: http.MethodPut,
			path:   "/targets/" + id.String() + "/currency",
			body:   `{"code":"JPY"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().SelectTarget(gomock.Any(), id, "JPY").Return(nil)
				m.EXPECT().State().Return(testState(), models.NoFocus)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "select currency service failure",
			method: http.MethodPut,
			path:   "/targets/" + id.String() + "/currency",
			body:   `{"code":"JPY"}`,
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().SelectTarget(gomock.Any(), id, "JPY").Return(errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "internal server error",
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			path:   "/targets/" + id.String(),
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().RemoveTarget(id).Return(nil)
				m.EXPECT().State().Return(models.ConversionState{BaseAmount: "100", BaseCurrency: "USD"}, models.NoFocus)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "remove unknown",
			method: http.MethodDelete,
			path:   "/targets/" + id.String(),
			mockSetup: func(m *MockTargetEditor) {
				m.EXPECT().RemoveTarget(id).Return(services.ErrTargetNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  services.ErrTargetNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockTargetEditor(ctrl)
			tt.mockSetup(svc)

			r := chi.NewRouter()
			RegisterTargetHandlers(r,
				NewAddTargetHandler(svc),
				NewEditTargetHandler(svc),
				NewSelectTargetCurrencyHandler(svc),
				NewRemoveTargetHandler(svc),
			)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, rr))
			}
		})
	}
}
