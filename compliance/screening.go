package compliance

import (
	"encoding/json"

	"github.com/w3sdev/circle-go/w3s"
)

// ScreeningResult is the top-level outcome of a screening request.
type ScreeningResult string

const (
	ScreeningResultApproved ScreeningResult = "APPROVED"
	ScreeningResultDenied   ScreeningResult = "DENIED"
)

// ScreeningResultValues lists both screening outcomes.
var ScreeningResultValues = []ScreeningResult{ScreeningResultApproved, ScreeningResultDenied}

func (s *ScreeningResult) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("screening result", data, ScreeningResultValues)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// RiskAction is an action a screening rule prescribes.
type RiskAction string

const (
	RiskActionApprove      RiskAction = "APPROVE"
	RiskActionReview       RiskAction = "REVIEW"
	RiskActionFreezeWallet RiskAction = "FREEZE_WALLET"
	RiskActionDeny         RiskAction = "DENY"
)

// RiskActionValues lists every prescribed action.
var RiskActionValues = []RiskAction{
	RiskActionApprove,
	RiskActionReview,
	RiskActionFreezeWallet,
	RiskActionDeny,
}

func (r *RiskAction) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk action", data, RiskActionValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskScore is the severity of a risk signal.
type RiskScore string

const (
	RiskScoreUnknown   RiskScore = "UNKNOWN"
	RiskScoreLow       RiskScore = "LOW"
	RiskScoreMedium    RiskScore = "MEDIUM"
	RiskScoreHigh      RiskScore = "HIGH"
	RiskScoreSevere    RiskScore = "SEVERE"
	RiskScoreBlocklist RiskScore = "BLOCKLIST"
)

// RiskScoreValues lists every severity the API reports.
var RiskScoreValues = []RiskScore{
	RiskScoreUnknown,
	RiskScoreLow,
	RiskScoreMedium,
	RiskScoreHigh,
	RiskScoreSevere,
	RiskScoreBlocklist,
}

func (r *RiskScore) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk score", data, RiskScoreValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskCategory classifies the nature of a risk signal.
type RiskCategory string

const (
	RiskCategorySanctions          RiskCategory = "SANCTIONS"
	RiskCategoryCsam               RiskCategory = "CSAM"
	RiskCategoryIllicitBehavior    RiskCategory = "ILLICIT_BEHAVIOR"
	RiskCategoryGambling           RiskCategory = "GAMBLING"
	RiskCategoryTerroristFinancing RiskCategory = "TERRORIST_FINANCING"
	RiskCategoryUnsupported        RiskCategory = "UNSUPPORTED"
	RiskCategoryFrozen             RiskCategory = "FROZEN"
	RiskCategoryOther              RiskCategory = "OTHER"
	RiskCategoryHighRiskIndustry   RiskCategory = "HIGH_RISK_INDUSTRY"
	RiskCategoryPep                RiskCategory = "PEP"
	RiskCategoryTrusted            RiskCategory = "TRUSTED"
	RiskCategoryHacking            RiskCategory = "HACKING"
	RiskCategoryHumanTrafficking   RiskCategory = "HUMAN_TRAFFICKING"
	RiskCategorySpecialMeasures    RiskCategory = "SPECIAL_MEASURES"
)

// RiskCategoryValues lists every category the API reports.
var RiskCategoryValues = []RiskCategory{
	RiskCategorySanctions,
	RiskCategoryCsam,
	RiskCategoryIllicitBehavior,
	RiskCategoryGambling,
	RiskCategoryTerroristFinancing,
	RiskCategoryUnsupported,
	RiskCategoryFrozen,
	RiskCategoryOther,
	RiskCategoryHighRiskIndustry,
	RiskCategoryPep,
	RiskCategoryTrusted,
	RiskCategoryHacking,
	RiskCategoryHumanTrafficking,
	RiskCategorySpecialMeasures,
}

func (r *RiskCategory) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk category", data, RiskCategoryValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RiskType relates a risk signal to the screened address.
type RiskType string

const (
	RiskTypeOwnership    RiskType = "OWNERSHIP"
	RiskTypeCounterparty RiskType = "COUNTERPARTY"
	RiskTypeIndirect     RiskType = "INDIRECT"
)

// RiskTypeValues lists every relationship type.
var RiskTypeValues = []RiskType{RiskTypeOwnership, RiskTypeCounterparty, RiskTypeIndirect}

func (r *RiskType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("risk type", data, RiskTypeValues)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ScreenAddressRequest is the body of ScreenAddress.
type ScreenAddressRequest struct {
	// IdempotencyKey is a UUIDv4. Left empty, the client generates one.
	IdempotencyKey string `json:"idempotencyKey"`
	Address        string `json:"address"`
	Chain          Chain  `json:"chain"`
}

// SignalSource points back into the raw vendor response.
type SignalSource struct {
	// RowID is the UUID of the vendor response row.
	RowID string `json:"rowId"`
	// Pointer is the JSON path of the signal within that row.
	Pointer string `json:"pointer"`
}

// RiskSignal is one piece of evidence behind a screening decision.
type RiskSignal struct {
	// Source is the signal data source: ADDRESS, BLOCKCHAIN or ASSET.
	Source         string         `json:"source"`
	SourceValue    string         `json:"sourceValue"`
	RiskScore      RiskScore      `json:"riskScore"`
	RiskCategories []RiskCategory `json:"riskCategories"`
	RiskType       RiskType       `json:"type"`
	SignalSource   *SignalSource  `json:"signalSource,omitempty"`
}

// Decision is the detailed outcome of a screening evaluation.
type Decision struct {
	// ScreeningDate is when the screening ran (ISO-8601).
	ScreeningDate string `json:"screeningDate"`
	// RuleName is the matched rule, if any.
	RuleName string       `json:"ruleName,omitempty"`
	Actions  []RiskAction `json:"actions,omitempty"`
	Reasons  []RiskSignal `json:"reasons,omitempty"`
}

// VendorDetail is a raw vendor response record.
type VendorDetail struct {
	ID     string `json:"id"`
	Vendor string `json:"vendor"`
	// Response is the free-form vendor payload, kept verbatim.
	Response   json.RawMessage `json:"response"`
	CreateDate string          `json:"createDate"`
}

// AddressScreening is the full result of screening one address.
type AddressScreening struct {
	Result   ScreeningResult `json:"result"`
	Decision Decision        `json:"decision"`
	// ID matches the idempotency key of the request.
	ID      string         `json:"id"`
	Address string         `json:"address"`
	Chain   Chain          `json:"chain"`
	Details []VendorDetail `json:"details"`
	// AlertID is set when the screening raised a compliance alert.
	AlertID string `json:"alertId,omitempty"`
}
