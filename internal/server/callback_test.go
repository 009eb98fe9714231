package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

func TestCallbackHandler(t *testing.T) {
	t.Run("Successful Login", func(t *testing.T) {
		h := NewCallbackHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/callback?logged_in=user123&name=Dana", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Logged In") {
			t.Error("expected success page")
		}

		select {
		case result := <-h.Result():
			if err := result.Error(); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !result.State.LoggedIn || result.State.UserID != "user123" || result.State.DisplayName != "Dana" {
				t.Errorf("unexpected auth state %+v", result.State)
			}
		case <-time.After(time.Second):
			t.Fatal("expected result on channel")
		}
	})

	t.Run("Name Is Optional", func(t *testing.T) {
		h := NewCallbackHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/callback?logged_in=user123", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		result := <-h.Result()
		if result.State.DisplayName != "" {
			t.Errorf("expected empty display name, got %q", result.State.DisplayName)
		}
		if result.State.UserID != "user123" {
			t.Errorf("unexpected user id %q", result.State.UserID)
		}
	})

	t.Run("Error Parameter Fails The Login", func(t *testing.T) {
		h := NewCallbackHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/callback?error=access_denied", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		result := <-h.Result()
		if !errors.Is(result.Error(), shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", result.Error())
		}
	})

	t.Run("Missing logged_in Fails The Login", func(t *testing.T) {
		h := NewCallbackHandler(nil)

		req := httptest.NewRequest(http.MethodGet, "/callback?name=Dana", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		result := <-h.Result()
		if !errors.Is(result.Error(), shared.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", result.Error())
		}
	})

	t.Run("Second Callback Rejected", func(t *testing.T) {
		h := NewCallbackHandler(nil)

		first := httptest.NewRequest(http.MethodGet, "/callback?logged_in=user123", nil)
		h.ServeHTTP(httptest.NewRecorder(), first)

		second := httptest.NewRequest(http.MethodGet, "/callback?logged_in=intruder", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, second)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for replay, got %d", rec.Code)
		}

		result := <-h.Result()
		if result.State.UserID != "user123" {
			t.Errorf("expected first callback to win, got %q", result.State.UserID)
		}
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("Routes And Middleware Order", func(t *testing.T) {
		var order []string

		router := NewBasicRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "outer")
				next.ServeHTTP(w, r)
			})
		})
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "inner")
				next.ServeHTTP(w, r)
			})
		})

		h := NewCallbackHandler(nil)
		router.Handler(h)

		req := httptest.NewRequest(http.MethodGet, "/callback?logged_in=u", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
			t.Errorf("unexpected middleware order %v", order)
		}
	})
}

func TestServe(t *testing.T) {
	t.Run("Shuts Down On Context Cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		listener := httptest.NewUnstartedServer(nil)
		addr := listener.Listener.Addr().String()
		listener.Close()

		done := make(chan error, 1)
		go func() {
			done <- Serve(ctx, addr, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "ok")
			}))
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("expected clean shutdown, got %v", err)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("server did not shut down")
		}
	})
}
