package buidl

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/w3sdev/circle-go/w3s"
)

func TestBlockchain_RoundTrip(t *testing.T) {
	data, err := json.Marshal(BlockchainEthSepolia)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"ETH-SEPOLIA"` {
		t.Errorf("expected \"ETH-SEPOLIA\", got %s", data)
	}

	var b Blockchain
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != BlockchainEthSepolia {
		t.Errorf("expected ETH-SEPOLIA, got %s", b)
	}
}

func TestBlockchain_UnknownValue(t *testing.T) {
	var b Blockchain
	err := json.Unmarshal([]byte(`"DOGE"`), &b)
	if err == nil {
		t.Fatal("expected error")
	}
	if !w3s.IsInvalidEnum(err) {
		t.Errorf("expected invalid enum error, got %v", err)
	}
}

func TestParseBlockchain(t *testing.T) {
	b, err := ParseBlockchain("MATIC-AMOY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != BlockchainMaticAmoy {
		t.Errorf("expected MATIC-AMOY, got %s", b)
	}

	if _, err := ParseBlockchain("eth"); err == nil {
		t.Error("expected error for lowercase value")
	}
}

func TestListTransfersParams_Query(t *testing.T) {
	p := ListTransfersParams{WalletAddresses: "0xABC"}
	want := map[string]string{"walletAddresses": "0xABC"}
	if got := p.Query(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestListTransfersParams_Query_AllFilters(t *testing.T) {
	p := ListTransfersParams{
		WalletAddresses: "0xabc,0xdef",
		Blockchain:      BlockchainBase,
		State:           TransferStateComplete,
		TransferType:    TransferTypeInbound,
		TxHash:          "0x1",
		UserOpHash:      "0x2",
		Page:            w3s.PageParams{PageSize: 25},
	}
	want := map[string]string{
		"walletAddresses": "0xabc,0xdef",
		"blockchain":      "BASE",
		"state":           "COMPLETE",
		"transferType":    "INBOUND_TRANSFER",
		"txHash":          "0x1",
		"userOpHash":      "0x2",
		"pageSize":        "25",
	}
	if got := p.Query(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFtStandard_NativeIsEmptyString(t *testing.T) {
	data, err := json.Marshal(FtStandardNative)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("expected empty string wire form, got %s", data)
	}

	var f FtStandard
	if err := json.Unmarshal([]byte(`""`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != FtStandardNative {
		t.Errorf("expected native, got %q", f)
	}
}

func TestListBalancesParams_NativeStandardFilter(t *testing.T) {
	p := ListBalancesParams{Standard: w3s.Ptr(FtStandardNative)}
	got := p.Query()
	v, ok := got["standard"]
	if !ok {
		t.Fatal("expected standard key for explicit native filter")
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}

	// Unset filter omits the key entirely.
	if _, ok := (ListBalancesParams{}).Query()["standard"]; ok {
		t.Error("expected no standard key when unset")
	}
}

func TestTransfer_DecodesCompleteState(t *testing.T) {
	body := `{
		"id": "c4d1da72-111e-4d52-bdbf-2e74a2d803d5",
		"walletId": "aaa11111-111e-4d52-bdbf-2e74a2d803d5",
		"amount": "1.0",
		"blockchain": "MATIC-AMOY",
		"from": "0x4b6c0b0078b63f881503e7fd3a9a1061065db242",
		"state": "COMPLETE",
		"to": "0x187785007d4a7d6756e834768597da8fa6fcfe8a",
		"tokenId": "bbb22222-111e-4d52-bdbf-2e74a2d803d5",
		"transferType": "OUTBOUND_TRANSFER",
		"txHash": "0x4a25cc5e661d8504b59c5f38ba93f010e8518966f00e2ceda7955c4b8621357d",
		"walletAddress": "0x4b6c0b0078b63f881503e7fd3a9a1061065db242"
	}`

	var tr Transfer
	if err := json.Unmarshal([]byte(body), &tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.State != TransferStateComplete {
		t.Errorf("expected COMPLETE, got %s", tr.State)
	}
	if tr.TransferType != TransferTypeOutbound {
		t.Errorf("expected OUTBOUND_TRANSFER, got %s", tr.TransferType)
	}
	if tr.Blockchain != BlockchainMaticAmoy {
		t.Errorf("expected MATIC-AMOY, got %s", tr.Blockchain)
	}
}
