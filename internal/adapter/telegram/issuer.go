package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"solgate/pkg/apperror"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Issuer implements ports.InviteIssuer by creating single-use chat invite
// links for the configured paid group. Links expire after the requested TTL,
// so a link issued but discarded by a losing concurrent check leaks nothing.
type Issuer struct {
	api    API
	chatID int64
}

// NewIssuer creates an invite issuer for the given group chat.
func NewIssuer(api API, chatID int64) *Issuer {
	return &Issuer{api: api, chatID: chatID}
}

// IssueInviteLink mints a link usable by exactly one member, expiring after ttl.
func (i *Issuer) IssueInviteLink(ctx context.Context, ttl time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperror.ErrInviteFailure(err)
	}

	cfg := tgbotapi.CreateChatInviteLinkConfig{
		ChatConfig:  tgbotapi.ChatConfig{ChatID: i.chatID},
		ExpireDate:  int(time.Now().Add(ttl).Unix()),
		MemberLimit: 1,
	}

	resp, err := i.api.Request(cfg)
	if err != nil {
		return "", apperror.ErrInviteFailure(fmt.Errorf("create chat invite link: %w", err))
	}

	var link tgbotapi.ChatInviteLink
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return "", apperror.ErrInviteFailure(fmt.Errorf("decode invite link response: %w", err))
	}
	if link.InviteLink == "" {
		return "", apperror.ErrInviteFailure(fmt.Errorf("empty invite link in response"))
	}
	return link.InviteLink, nil
}
