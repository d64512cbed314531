package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sofa-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Login(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(&model.LoginResponse{Token: "signed.jwt.token"}, nil)

		body := bytes.NewBufferString(`{"email":"owner@sofashop.example","password":"hunter22"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "signed.jwt.token", got.Token)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := NewAdminHandler(mockService, logger)

		mockService.On("Login", mock.Anything, mock.AnythingOfType("*model.LoginRequest")).
			Return(nil, model.ErrBadCredentials)

		body := bytes.NewBufferString(`{"email":"owner@sofashop.example","password":"guess"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Invalid email or password.", resp.Error)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		mockService := new(MockAuthService)
		h := NewAdminHandler(mockService, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Login")
	})
}

func TestContactHandler_Submit(t *testing.T) {
	logger := zerolog.Nop()

	valid := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","message":"Where is my sofa?"}`

	t.Run("Success", func(t *testing.T) {
		mockMailer := new(MockMailer)
		h := NewContactHandler(mockMailer, logger)

		mockMailer.On("SendContactMessage", mock.Anything, mock.AnythingOfType("*model.ContactRequest")).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(valid))
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockMailer.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockMailer := new(MockMailer)
		h := NewContactHandler(mockMailer, logger)

		body := `{"firstName":"Ada","email":"ada@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockMailer.AssertNotCalled(t, "SendContactMessage")
	})

	t.Run("Relay failure is surfaced", func(t *testing.T) {
		mockMailer := new(MockMailer)
		h := NewContactHandler(mockMailer, logger)

		mockMailer.On("SendContactMessage", mock.Anything, mock.AnythingOfType("*model.ContactRequest")).
			Return(errors.New("smtp down"))

		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(valid))
		rec := httptest.NewRecorder()

		h.Submit(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
