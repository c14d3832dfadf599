//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-ecdsa-verify/pkg/ecdsa"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECDSA Verify WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECDSAVerify", map[string]interface{}{
		"Verify": js.FuncOf(Verify),
		"Curves": js.FuncOf(Curves),
	})

	<-c
}

// VerifyInput mirrors the library inputs with hex-encoded big integers so JS
// callers never lose precision to float64 numbers.
type VerifyInput struct {
	Curve      string `json:"curve"`
	PublicKeyX string `json:"publicKeyX"`
	PublicKeyY string `json:"publicKeyY"`
	Digest     string `json:"digest"`
	R          string `json:"r"`
	S          string `json:"s"`
}

// Verify checks one signature.
// Arguments:
// 0: JSON string of VerifyInput
// Returns:
// JSON string {"valid": bool, "reason": string}
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return `{"valid": false, "reason": "expected 1 argument (jsonInput)"}`
	}

	var input VerifyInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf(`{"valid": false, "reason": "invalid json: %v"}`, err)
	}

	x, okX := new(big.Int).SetString(input.PublicKeyX, 16)
	y, okY := new(big.Int).SetString(input.PublicKeyY, 16)
	r, okR := new(big.Int).SetString(input.R, 16)
	s, okS := new(big.Int).SetString(input.S, 16)
	if !okX || !okY || !okR || !okS {
		return `{"valid": false, "reason": "invalid hex integer"}`
	}

	digest, err := hex.DecodeString(input.Digest)
	if err != nil {
		return fmt.Sprintf(`{"valid": false, "reason": "invalid digest hex: %v"}`, err)
	}

	verifyErr := ecdsa.VerifyDigest(input.Curve,
		&ecdsa.PublicKey{X: x, Y: y},
		digest,
		&ecdsa.Signature{R: r, S: s})

	resp := map[string]interface{}{
		"valid": verifyErr == nil,
	}
	if verifyErr != nil {
		resp["reason"] = verifyErr.Error()
	}

	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Curves returns the supported curve names as a JSON array.
func Curves(this js.Value, args []js.Value) interface{} {
	b, _ := json.Marshal(ecdsa.CurveNames())
	return string(b)
}
