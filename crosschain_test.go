package solvent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/solventhq/solvent-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCrossChainRequest() *solvent.CreateCrossChainTransferRequest {
	return &solvent.CreateCrossChainTransferRequest{
		Amount:             "500.00",
		Currency:           "usdc",
		SourceChain:        "ethereum",
		DestinationChain:   "polygon",
		DestinationAddress: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
	}
}

func TestCreateCrossChainTransfer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crosschain_transfers", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"id":                     "cct_1",
			"state":                  "awaiting_funds",
			"source_deposit_address": "0x1111111111111111111111111111111111111111",
		})
	})
	client := newTestClient(t, handler, solvent.Config{})

	transfer, err := client.CrossChain.Create(context.Background(), validCrossChainRequest())
	require.NoError(t, err)
	assert.Equal(t, "cct_1", transfer.ID)
	assert.NotEmpty(t, transfer.SourceDepositAddress)
}

func TestCreateCrossChainTransferRejectsSameChain(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	req := validCrossChainRequest()
	req.DestinationChain = req.SourceChain

	_, err := client.CrossChain.Create(context.Background(), req)
	requireFieldError(t, err, "destination_chain")
}

func TestCreateCrossChainTransferRejectsBadDestination(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	req := validCrossChainRequest()
	req.DestinationChain = "solana"
	req.DestinationAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

	_, err := client.CrossChain.Create(context.Background(), req)
	requireFieldError(t, err, "destination.address")
}

func TestCompleteCrossChainTransfer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crosschain_transfers/cct_1/complete", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xabc123", req["source_tx_hash"])

		_ = json.NewEncoder(w).Encode(map[string]string{"id": "cct_1", "state": "in_review"})
	})
	client := newTestClient(t, handler, solvent.Config{})

	transfer, err := client.CrossChain.Complete(context.Background(), "cct_1", &solvent.CompleteCrossChainTransferRequest{
		SourceTxHash: "0xabc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "in_review", transfer.State)
}

func TestCompleteCrossChainTransferRejectsNonHexProof(t *testing.T) {
	client := newTestClient(t, failIfCalled(t), solvent.Config{})

	_, err := client.CrossChain.Complete(context.Background(), "cct_1", &solvent.CompleteCrossChainTransferRequest{
		SourceTxHash: "not hex!",
	})
	requireFieldError(t, err, "source_tx_hash")
}
