package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solgate/internal/core/domain"
	"solgate/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Router dispatches inbound Telegram updates to the verification engine and
// renders outcomes back as replies. Each update is handled independently;
// coordination happens only through the wallet ledger.
type Router struct {
	api      API
	svc      ports.AccessService
	gate     ports.CheckGate // nil = no check throttling
	cooldown time.Duration
	log      zerolog.Logger
}

// NewRouter creates a new Router. gate may be nil to disable per-address
// check throttling.
func NewRouter(api API, svc ports.AccessService, gate ports.CheckGate, cooldown time.Duration, log zerolog.Logger) *Router {
	return &Router{
		api:      api,
		svc:      svc,
		gate:     gate,
		cooldown: cooldown,
		log:      log,
	}
}

// Listen consumes updates from the channel, handling each in its own
// goroutine. Returns when the channel closes or ctx is done.
func (r *Router) Listen(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go r.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes one update. It never panics the process: every
// failure path ends in a user-facing reply or a logged error.
func (r *Router) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Msg("recovered panic in update handler")
		}
	}()

	switch {
	case update.Message != nil && update.Message.IsCommand():
		r.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		r.handleCallback(ctx, update.CallbackQuery)
	}
}

func (r *Router) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "invite":
		r.handleProvision(ctx, msg)
	default:
		// Unknown commands are ignored, matching group-bot etiquette.
	}
}

func (r *Router) handleProvision(ctx context.Context, msg *tgbotapi.Message) {
	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}

	result, err := r.svc.HandleProvisionRequest(ctx, userID)
	if err != nil {
		r.log.Error().Err(err).Int64("user_id", userID).Msg("provision request failed")
		r.reply(msg.Chat.ID, provisionFailedText)
		return
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, paymentInstructions(result.Address, result.RequiredLamports))
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(checkPaymentButton, checkPaymentCallback+result.Address),
		),
	)
	if _, err := r.api.Send(reply); err != nil {
		r.log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("sending payment instructions failed")
	}
}

func (r *Router) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Acknowledge the button press so the client stops its spinner.
	if _, err := r.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		r.log.Debug().Err(err).Msg("answering callback query failed")
	}

	address, ok := strings.CutPrefix(cb.Data, checkPaymentCallback)
	if !ok || cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	// Throttle repeated presses per address. Best effort: a gate failure
	// never blocks the check.
	if r.gate != nil {
		acquired, err := r.gate.TryAcquire(ctx, address, r.cooldown)
		if err != nil {
			r.log.Warn().Err(err).Str("address", address).Msg("check gate unavailable, proceeding without throttle")
		} else if !acquired {
			r.reply(chatID, cooldownText)
			return
		}
	}

	result, err := r.svc.HandleCheckPayment(ctx, address)
	if err != nil {
		r.log.Error().Err(err).Str("address", address).Msg("payment check failed")
		r.reply(chatID, transientText)
		return
	}

	switch result.Outcome {
	case domain.OutcomeGranted:
		if result.Signature != "" {
			r.reply(chatID, grantedTxText(result.Signature))
		} else {
			r.reply(chatID, grantedNoTxText)
		}
		r.reply(chatID, fmt.Sprintf(inviteText, result.InviteLink))
	case domain.OutcomeAlreadyVerified:
		r.reply(chatID, alreadyVerifiedText)
	case domain.OutcomeNotFound:
		r.reply(chatID, unknownAddressText)
	case domain.OutcomeInsufficientBalance:
		r.reply(chatID, notPaidText)
	case domain.OutcomeTransientFailure:
		r.reply(chatID, transientText)
	}
}

func (r *Router) reply(chatID int64, text string) {
	if _, err := r.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		r.log.Error().Err(err).Int64("chat_id", chatID).Msg("sending reply failed")
	}
}
