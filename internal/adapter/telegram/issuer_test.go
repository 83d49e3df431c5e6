package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"solgate/pkg/apperror"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// issuerAPI answers Request with a canned response and records the config it saw.
type issuerAPI struct {
	got  tgbotapi.Chattable
	resp *tgbotapi.APIResponse
	err  error
}

func (f *issuerAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return tgbotapi.Message{}, nil
}

func (f *issuerAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.got = c
	return f.resp, f.err
}

func TestIssuer_IssueInviteLink(t *testing.T) {
	api := &issuerAPI{
		resp: &tgbotapi.APIResponse{
			Ok:     true,
			Result: json.RawMessage(`{"invite_link":"https://t.me/+abcdef","creator":{"id":1},"member_limit":1}`),
		},
	}
	issuer := NewIssuer(api, -1001234567890)

	link, err := issuer.IssueInviteLink(context.Background(), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/+abcdef", link)

	cfg, ok := api.got.(tgbotapi.CreateChatInviteLinkConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-1001234567890), cfg.ChatConfig.ChatID)
	assert.Equal(t, 1, cfg.MemberLimit, "invite links must be single use")
	assert.Greater(t, cfg.ExpireDate, int(time.Now().Unix()), "invite links must expire")
}

func TestIssuer_IssueInviteLink_APIError(t *testing.T) {
	api := &issuerAPI{err: errors.New("bot is not an admin")}
	issuer := NewIssuer(api, -100)

	_, err := issuer.IssueInviteLink(context.Background(), time.Hour)
	assert.True(t, apperror.HasCode(err, apperror.CodeInviteFailure))
}

func TestIssuer_IssueInviteLink_EmptyLink(t *testing.T) {
	api := &issuerAPI{
		resp: &tgbotapi.APIResponse{Ok: true, Result: json.RawMessage(`{}`)},
	}
	issuer := NewIssuer(api, -100)

	_, err := issuer.IssueInviteLink(context.Background(), time.Hour)
	assert.True(t, apperror.HasCode(err, apperror.CodeInviteFailure))
}

func TestIssuer_IssueInviteLink_CancelledContext(t *testing.T) {
	api := &issuerAPI{}
	issuer := NewIssuer(api, -100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := issuer.IssueInviteLink(ctx, time.Hour)
	assert.True(t, apperror.HasCode(err, apperror.CodeInviteFailure))
	assert.Nil(t, api.got, "no API call after cancellation")
}
