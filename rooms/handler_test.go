package rooms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abhay12911/collaborative-draw-app/domain"
)

func setupRouter(repo *MockRoomRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(repo))

	r := gin.New()
	r.POST("/room", func(ctx *gin.Context) {
		ctx.Set("userId", "user-1") // stands in for the auth middleware
		h.CreateRoomHandler(ctx)
	})
	r.GET("/room/:slug", h.GetRoomHandler)
	r.GET("/chats/:roomId", h.GetChatsHandler)
	return r
}

func TestCreateRoomHandler(t *testing.T) {
	repo := &MockRoomRepo{}
	repo.On("CreateRoom", mock.Anything, "my-canvas", "user-1").Return("room-1", nil)
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/room", strings.NewReader(`{"name":"my-canvas"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"roomId":"room-1"}`, w.Body.String())
}

func TestCreateRoomHandler_BadSlug(t *testing.T) {
	repo := &MockRoomRepo{}
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/room", strings.NewReader(`{"name":"Not A Slug!"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "CreateRoom", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetRoomHandler_NotFound(t *testing.T) {
	repo := &MockRoomRepo{}
	repo.On("GetRoomBySlug", mock.Anything, "ghost").Return(domain.Room{}, domain.ErrRoomNotFound)
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/room/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChatsHandler(t *testing.T) {
	repo := &MockRoomRepo{}
	repo.On("GetChatsByRoom", mock.Anything, "room-1", historyLimit).Return([]domain.Chat{
		{Id: 1, RoomId: "room-1", UserId: "user-1", Message: `{"shape":{"type":"rect","x":0,"y":0,"width":1,"height":1}}`},
		{Id: 2, RoomId: "room-1", UserId: "user-2", Message: `{"shape":{"type":"circle","centerX":0,"centerY":0,"radius":1}}`},
	}, nil)
	r := setupRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chats/room-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Messages []struct {
			Id      int64  `json:"id"`
			UserId  string `json:"userId"`
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Messages, 2)
	assert.Equal(t, int64(1), body.Messages[0].Id)
	assert.Equal(t, "user-1", body.Messages[0].UserId)
	assert.JSONEq(t, `{"shape":{"type":"rect","x":0,"y":0,"width":1,"height":1}}`, body.Messages[0].Message)
	assert.Equal(t, int64(2), body.Messages[1].Id)
	assert.JSONEq(t, `{"shape":{"type":"circle","centerX":0,"centerY":0,"radius":1}}`, body.Messages[1].Message)
}
