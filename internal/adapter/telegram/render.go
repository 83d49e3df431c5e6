package telegram

import (
	"fmt"

	"solgate/internal/core/domain"
)

// User-facing reply texts. Every engine outcome renders to a message; no
// failure surfaces as a crash or silence.

func paymentInstructions(address string, requiredLamports uint64) string {
	return fmt.Sprintf(
		"Send %s SOL to the address below in order to gain access to the paid group\n`%s`",
		domain.SOLString(requiredLamports), address,
	)
}

func grantedTxText(signature string) string {
	return fmt.Sprintf("Payment received! Here is the transaction link: https://solscan.io/tx/%s", signature)
}

const (
	grantedNoTxText      = "Payment received!"
	inviteText           = "Here is your invite link: %s"
	alreadyVerifiedText  = "Payment already verified. An invite link has already been generated for this address."
	notPaidText          = "Payment not received yet. Please try again later."
	unknownAddressText   = "This payment address is not known. Use /start to get a fresh one."
	transientText        = "Could not complete the check right now. Please try again later."
	cooldownText         = "Still checking, give it a few seconds."
	provisionFailedText  = "Could not create a payment address. Please try again later."
	checkPaymentButton   = "Check Payment ✅"
	checkPaymentCallback = "check_payment_"
)
