package developer

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/w3sdev/circle-go/w3s"
)

func TestTransactionState_UnknownValue(t *testing.T) {
	var s TransactionState
	err := json.Unmarshal([]byte(`"EXPLODED"`), &s)
	if err == nil {
		t.Fatal("expected error")
	}
	if !w3s.IsInvalidEnum(err) {
		t.Errorf("expected invalid enum error, got %v", err)
	}
}

func TestParseTokenStandard_MixedCase(t *testing.T) {
	std, err := ParseTokenStandard("ProgrammableNonFungible")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if std != TokenStandardProgrammableNonFungible {
		t.Errorf("unexpected standard %s", std)
	}

	// Wire values are case sensitive.
	if _, err := ParseTokenStandard("PROGRAMMABLENONFUNGIBLE"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseCustodyType(t *testing.T) {
	ct, err := ParseCustodyType("ENDUSER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct != CustodyTypeEnduser {
		t.Errorf("expected ENDUSER, got %s", ct)
	}

	if _, err := ParseCustodyType("CUSTODIAL"); err == nil {
		t.Fatal("expected error")
	}
}

func TestListTransactionsParams_Query(t *testing.T) {
	p := ListTransactionsParams{
		Blockchain:      BlockchainEth,
		IncludeAll:      true,
		State:           TransactionStateComplete,
		TransactionHash: "0xhash",
		WalletIDs:       "w1,w2",
		Page:            w3s.PageParams{PageSize: 25},
	}

	want := map[string]string{
		"blockchain":      "ETH",
		"includeAll":      "true",
		"state":           "COMPLETE",
		"transactionHash": "0xhash",
		"walletIds":       "w1,w2",
		"pageSize":        "25",
	}
	if got := p.Query(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestListWalletsParams_QueryOmitsUnset(t *testing.T) {
	p := ListWalletsParams{WalletSetID: "ws1"}

	want := map[string]string{"walletSetId": "ws1"}
	if got := p.Query(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestWallet_DecodesScaFields(t *testing.T) {
	body := `{
		"id": "w1",
		"address": "0xabc",
		"blockchain": "BASE-SEPOLIA",
		"createDate": "2024-01-01T00:00:00Z",
		"updateDate": "2024-01-01T00:00:00Z",
		"custodyType": "DEVELOPER",
		"state": "LIVE",
		"accountType": "SCA",
		"scaCore": "circle_4337_v1",
		"initialPublicKey": "04bfcab..."
	}`

	var w Wallet
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.AccountType != AccountTypeSca {
		t.Errorf("expected SCA, got %s", w.AccountType)
	}
	if w.ScaCore != ScaCoreCircle4337V1 {
		t.Errorf("unexpected sca core %s", w.ScaCore)
	}
	if w.InitialPublicKey == "" {
		t.Error("expected initial public key")
	}
}

func TestCreateTransferRequest_MarshalOmitsUnset(t *testing.T) {
	req := CreateTransferRequest{
		IdempotencyKey:         "7f09bb7c-d390-4d1a-b6f1-6ae985af9893",
		EntitySecretCiphertext: "cipher",
		WalletID:               "w1",
		DestinationAddress:     "0xdest",
		Amounts:                []string{"1.0"},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"tokenId", "feeLevel", "gasLimit", "blockchain", "refId"} {
		if _, ok := m[key]; ok {
			t.Errorf("expected %s to be omitted", key)
		}
	}
	if m["walletId"] != "w1" {
		t.Errorf("expected walletId w1, got %v", m["walletId"])
	}
}
