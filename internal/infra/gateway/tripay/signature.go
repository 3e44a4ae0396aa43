package tripay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Signature computes the transaction signature the gateway expects:
// HMAC-SHA256(merchant_code + merchant_ref + amount) keyed with the
// merchant private key, hex encoded.
func Signature(merchantCode, merchantRef string, amount int64, privateKey string) string {
	mac := hmac.New(sha256.New, []byte(privateKey))
	mac.Write([]byte(merchantCode + merchantRef + strconv.FormatInt(amount, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// CallbackSignature signs the raw callback body; the gateway sends the
// same value in the X-Callback-Signature header.
func CallbackSignature(rawBody []byte, privateKey string) string {
	mac := hmac.New(sha256.New, []byte(privateKey))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyCallbackSignature compares in constant time.
func VerifyCallbackSignature(rawBody []byte, signature, privateKey string) bool {
	expected := CallbackSignature(rawBody, privateKey)
	return hmac.Equal([]byte(expected), []byte(signature))
}
