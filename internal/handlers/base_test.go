package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestBaseHandlers(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		mockSetup    func(m *MockBaseEditor)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "edit amount",
			method: http.MethodPut,
			path:   "/base",
			body:   `{"amount":"100,5"}`,
			mockSetup: func(m *MockBaseEditor) {
				m.EXPECT().EditBase(gomock.Any(), "100,5")
				m.EXPECT().State().Return(testState(), models.BaseFocus)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "edit amount with unparseable text",
			method: http.MethodPut,
			path:   "/base",
			body:   `{"amount":"abc"}`,
			mockSetup: func(m *MockBaseEditor) {
				m.EXPECT().EditBase(gomock.Any(), "abc")
				m.EXPECT().State().Return(models.ConversionState{BaseAmount: "abc"}, models.BaseFocus)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "edit amount invalid json",
			method:       http.MethodPut,
			path:         "/base",
			body:         `{"amount":`,
			mockSetup:    func(m *MockBaseEditor) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
		{
			name:   "select currency",
			method: http.MethodPut,
			path:   "/base/currency",
			body:   `{"code":"EUR"}`,
			mockSetup: func(m *MockBaseEditor) {
				m.EXPECT().SelectBase(gomock.Any(), "EUR").Return(nil)
				m.EXPECT().State().Return(testState(), models.NoFocus)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "select unknown currency",
			method: http.MethodPut,
			path:   "/base/currency",
			body:   `{"code":"XYZ"}`,
			mockSetup: func(m *MockBaseEditor) {
				m.EXPECT().SelectBase(gomock.Any(), "XYZ").Return(services.ErrUnknownCurrency)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  services.ErrUnknownCurrency.Error(),
		},
		{
			name:         "select without code",
			method:       http.MethodPut,
			path:         "/base/currency",
			body:         `{}`,
			mockSetup:    func(m *MockBaseEditor) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockBaseEditor(ctrl)
			tt.mockSetup(svc)

			r := chi.NewRouter()
			RegisterBaseHandlers(r, NewEditBaseHandler(svc), NewSelectBaseCurrencyHandler(svc))

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
