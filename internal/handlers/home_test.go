package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/brunofarias87/user-directory/internal/models"
	"github.com/brunofarias87/user-directory/internal/render"
	"github.com/brunofarias87/user-directory/internal/services"
)

func postForm(t *testing.T, handler http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHomeHandler_GetRendersLoginPage(t *testing.T) {
	pages, err := render.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockCredentialsVerifier(ctrl)

	handler := NewHomeHandler(mockSvc, pages)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Visitante")
	assert.NotContains(t, rr.Body.String(), "Email ou senha incorretos!")
}

func TestHomeHandler_PostValidCredentialsRedirects(t *testing.T) {
	pages, err := render.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockCredentialsVerifier(ctrl)
	mockSvc.EXPECT().
		VerifyCredentials(gomock.Any(), "ana@example.com", "secret1").
		Return(&models.User{ID: 1, Name: "Ana Maria", Email: "ana@example.com"}, nil)

	handler := NewHomeHandler(mockSvc, pages)

	rr := postForm(t, handler, "/", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret1"},
	})

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/dashboard/Ana%20Maria", rr.Header().Get("Location"))
}

func TestHomeHandler_PostBadCredentialsRendersError(t *testing.T) {
	pages, err := render.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockCredentialsVerifier(ctrl)
	mockSvc.EXPECT().
		VerifyCredentials(gomock.Any(), "ana@example.com", "wrong").
		Return(nil, services.ErrInvalidCredentials)

	handler := NewHomeHandler(mockSvc, pages)

	rr := postForm(t, handler, "/", url.Values{
		"email":    {"ana@example.com"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Email ou senha incorretos!")
}

func TestHomeHandler_PostStorageErrorReturns500(t *testing.T) {
	pages, err := render.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockCredentialsVerifier(ctrl)
	mockSvc.EXPECT().
		VerifyCredentials(gomock.Any(), "ana@example.com", "secret1").
		Return(nil, errors.New("database failure"))

	handler := NewHomeHandler(mockSvc, pages)

	rr := postForm(t, handler, "/", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret1"},
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLoginPageHandler_UsesLoginTemplate(t *testing.T) {
	pages, err := render.New()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockCredentialsVerifier(ctrl)

	handler := NewLoginPageHandler(mockSvc, pages)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `action="/login"`)
}
