package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Abhay12911/collaborative-draw-app/shape"
)

// FetchHistory loads a room's persisted shapes from the history endpoint,
// in durable order, for seeding the store before live messages are
// processed. Entries whose payload does not parse as a shape are skipped.
func FetchHistory(ctx context.Context, httpClient *http.Client, baseURL, roomId, token string) ([]shape.Shape, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/chats/%s", baseURL, roomId), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history fetch returned status %d", resp.StatusCode)
	}

	var body struct {
		Messages []struct {
			Id      int64  `json:"id"`
			UserId  string `json:"userId"`
			Message string `json:"message"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	shapes := make([]shape.Shape, 0, len(body.Messages))
	for _, msg := range body.Messages {
		var payload shape.Envelope
		if err := json.Unmarshal([]byte(msg.Message), &payload); err != nil {
			log.Warn().Err(err).Int64("chatId", msg.Id).Msg("skipping history entry with bad payload")
			continue
		}
		shapes = append(shapes, payload.Shape)
	}
	return shapes, nil
}
