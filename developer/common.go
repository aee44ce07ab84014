package developer

import "github.com/w3sdev/circle-go/w3s"

// Blockchain identifies a network supported by developer-controlled wallets.
type Blockchain string

const (
	BlockchainEth          Blockchain = "ETH"
	BlockchainEthSepolia   Blockchain = "ETH-SEPOLIA"
	BlockchainAvax         Blockchain = "AVAX"
	BlockchainAvaxFuji     Blockchain = "AVAX-FUJI"
	BlockchainMatic        Blockchain = "MATIC"
	BlockchainMaticAmoy    Blockchain = "MATIC-AMOY"
	BlockchainSol          Blockchain = "SOL"
	BlockchainSolDevnet    Blockchain = "SOL-DEVNET"
	BlockchainArb          Blockchain = "ARB"
	BlockchainArbSepolia   Blockchain = "ARB-SEPOLIA"
	BlockchainNear         Blockchain = "NEAR"
	BlockchainNearTestnet  Blockchain = "NEAR-TESTNET"
	BlockchainEvm          Blockchain = "EVM"
	BlockchainEvmTestnet   Blockchain = "EVM-TESTNET"
	BlockchainUni          Blockchain = "UNI"
	BlockchainUniSepolia   Blockchain = "UNI-SEPOLIA"
	BlockchainBase         Blockchain = "BASE"
	BlockchainBaseSepolia  Blockchain = "BASE-SEPOLIA"
	BlockchainOp           Blockchain = "OP"
	BlockchainOpSepolia    Blockchain = "OP-SEPOLIA"
	BlockchainAptos        Blockchain = "APTOS"
	BlockchainAptosTestnet Blockchain = "APTOS-TESTNET"
	BlockchainArcTestnet   Blockchain = "ARC-TESTNET"
	BlockchainMonad        Blockchain = "MONAD"
	BlockchainMonadTestnet Blockchain = "MONAD-TESTNET"
)

// BlockchainValues lists every network the API accepts.
var BlockchainValues = []Blockchain{
	BlockchainEth,
	BlockchainEthSepolia,
	BlockchainAvax,
	BlockchainAvaxFuji,
	BlockchainMatic,
	BlockchainMaticAmoy,
	BlockchainSol,
	BlockchainSolDevnet,
	BlockchainArb,
	BlockchainArbSepolia,
	BlockchainNear,
	BlockchainNearTestnet,
	BlockchainEvm,
	BlockchainEvmTestnet,
	BlockchainUni,
	BlockchainUniSepolia,
	BlockchainBase,
	BlockchainBaseSepolia,
	BlockchainOp,
	BlockchainOpSepolia,
	BlockchainAptos,
	BlockchainAptosTestnet,
	BlockchainArcTestnet,
	BlockchainMonad,
	BlockchainMonadTestnet,
}

// ParseBlockchain validates a wire value such as "ETH-SEPOLIA".
func ParseBlockchain(s string) (Blockchain, error) {
	return w3s.ParseEnum("blockchain", s, BlockchainValues)
}

// UnmarshalJSON rejects values outside the known set.
func (b *Blockchain) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("blockchain", data, BlockchainValues)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// EvmBlockchain is the EVM-compatible subset of Blockchain, for flows that
// only exist on EVM chains (smart contract accounts, typed data signing).
type EvmBlockchain string

const (
	EvmBlockchainEth          EvmBlockchain = "ETH"
	EvmBlockchainEthSepolia   EvmBlockchain = "ETH-SEPOLIA"
	EvmBlockchainAvax         EvmBlockchain = "AVAX"
	EvmBlockchainAvaxFuji     EvmBlockchain = "AVAX-FUJI"
	EvmBlockchainMatic        EvmBlockchain = "MATIC"
	EvmBlockchainMaticAmoy    EvmBlockchain = "MATIC-AMOY"
	EvmBlockchainArb          EvmBlockchain = "ARB"
	EvmBlockchainArbSepolia   EvmBlockchain = "ARB-SEPOLIA"
	EvmBlockchainUni          EvmBlockchain = "UNI"
	EvmBlockchainUniSepolia   EvmBlockchain = "UNI-SEPOLIA"
	EvmBlockchainBase         EvmBlockchain = "BASE"
	EvmBlockchainBaseSepolia  EvmBlockchain = "BASE-SEPOLIA"
	EvmBlockchainOp           EvmBlockchain = "OP"
	EvmBlockchainOpSepolia    EvmBlockchain = "OP-SEPOLIA"
	EvmBlockchainEvm          EvmBlockchain = "EVM"
	EvmBlockchainEvmTestnet   EvmBlockchain = "EVM-TESTNET"
	EvmBlockchainArcTestnet   EvmBlockchain = "ARC-TESTNET"
	EvmBlockchainMonad        EvmBlockchain = "MONAD"
	EvmBlockchainMonadTestnet EvmBlockchain = "MONAD-TESTNET"
)

// EvmBlockchainValues lists every EVM-compatible network.
var EvmBlockchainValues = []EvmBlockchain{
	EvmBlockchainEth,
	EvmBlockchainEthSepolia,
	EvmBlockchainAvax,
	EvmBlockchainAvaxFuji,
	EvmBlockchainMatic,
	EvmBlockchainMaticAmoy,
	EvmBlockchainArb,
	EvmBlockchainArbSepolia,
	EvmBlockchainUni,
	EvmBlockchainUniSepolia,
	EvmBlockchainBase,
	EvmBlockchainBaseSepolia,
	EvmBlockchainOp,
	EvmBlockchainOpSepolia,
	EvmBlockchainEvm,
	EvmBlockchainEvmTestnet,
	EvmBlockchainArcTestnet,
	EvmBlockchainMonad,
	EvmBlockchainMonadTestnet,
}

// ParseEvmBlockchain validates a wire value such as "BASE".
func ParseEvmBlockchain(s string) (EvmBlockchain, error) {
	return w3s.ParseEnum("evm blockchain", s, EvmBlockchainValues)
}

// UnmarshalJSON rejects values outside the known set.
func (b *EvmBlockchain) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("evm blockchain", data, EvmBlockchainValues)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// CustodyType states who controls a wallet.
type CustodyType string

const (
	CustodyTypeDeveloper CustodyType = "DEVELOPER"
	CustodyTypeEnduser   CustodyType = "ENDUSER"
)

// CustodyTypeValues lists both custody types.
var CustodyTypeValues = []CustodyType{CustodyTypeDeveloper, CustodyTypeEnduser}

// ParseCustodyType validates a wire value such as "DEVELOPER".
func ParseCustodyType(s string) (CustodyType, error) {
	return w3s.ParseEnum("custody type", s, CustodyTypeValues)
}

func (c *CustodyType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("custody type", data, CustodyTypeValues)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// AccountType distinguishes smart contract accounts from externally owned
// accounts.
type AccountType string

const (
	AccountTypeSca AccountType = "SCA"
	AccountTypeEoa AccountType = "EOA"
)

// AccountTypeValues lists both account types.
var AccountTypeValues = []AccountType{AccountTypeSca, AccountTypeEoa}

// ParseAccountType validates a wire value ("SCA" or "EOA").
func ParseAccountType(s string) (AccountType, error) {
	return w3s.ParseEnum("account type", s, AccountTypeValues)
}

func (a *AccountType) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("account type", data, AccountTypeValues)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// WalletState is the lifecycle state of a wallet.
type WalletState string

const (
	WalletStateLive   WalletState = "LIVE"
	WalletStateFrozen WalletState = "FROZEN"
)

// WalletStateValues lists both wallet states.
var WalletStateValues = []WalletState{WalletStateLive, WalletStateFrozen}

// ParseWalletState validates a wire value ("LIVE" or "FROZEN").
func ParseWalletState(s string) (WalletState, error) {
	return w3s.ParseEnum("wallet state", s, WalletStateValues)
}

func (ws *WalletState) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("wallet state", data, WalletStateValues)
	if err != nil {
		return err
	}
	*ws = v
	return nil
}

// FeeLevel is a transaction fee priority.
type FeeLevel string

const (
	FeeLevelLow    FeeLevel = "LOW"
	FeeLevelMedium FeeLevel = "MEDIUM"
	FeeLevelHigh   FeeLevel = "HIGH"
)

// FeeLevelValues lists every fee priority.
var FeeLevelValues = []FeeLevel{FeeLevelLow, FeeLevelMedium, FeeLevelHigh}

// ParseFeeLevel validates a wire value such as "MEDIUM".
func ParseFeeLevel(s string) (FeeLevel, error) {
	return w3s.ParseEnum("fee level", s, FeeLevelValues)
}

func (f *FeeLevel) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("fee level", data, FeeLevelValues)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// TokenStandard is a token standard across EVM, Solana and Aptos. The wire
// values are mixed-case for the non-EVM standards.
type TokenStandard string

const (
	TokenStandardErc20   TokenStandard = "ERC20"
	TokenStandardErc721  TokenStandard = "ERC721"
	TokenStandardErc1155 TokenStandard = "ERC1155"
	// TokenStandardFungible is the Solana fungible token standard.
	TokenStandardFungible TokenStandard = "Fungible"
	// TokenStandardFungibleAsset is the Aptos fungible asset standard.
	TokenStandardFungibleAsset                  TokenStandard = "FungibleAsset"
	TokenStandardNonFungible                    TokenStandard = "NonFungible"
	TokenStandardNonFungibleEdition             TokenStandard = "NonFungibleEdition"
	TokenStandardProgrammableNonFungible        TokenStandard = "ProgrammableNonFungible"
	TokenStandardProgrammableNonFungibleEdition TokenStandard = "ProgrammableNonFungibleEdition"
)

// TokenStandardValues lists every token standard the API reports.
var TokenStandardValues = []TokenStandard{
	TokenStandardErc20,
	TokenStandardErc721,
	TokenStandardErc1155,
	TokenStandardFungible,
	TokenStandardFungibleAsset,
	TokenStandardNonFungible,
	TokenStandardNonFungibleEdition,
	TokenStandardProgrammableNonFungible,
	TokenStandardProgrammableNonFungibleEdition,
}

// ParseTokenStandard validates a wire value such as "ERC20".
func ParseTokenStandard(s string) (TokenStandard, error) {
	return w3s.ParseEnum("token standard", s, TokenStandardValues)
}

func (t *TokenStandard) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("token standard", data, TokenStandardValues)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TransactionFee is a fee breakdown. Which fields are set depends on the
// chain and transaction type; all values are decimal strings.
type TransactionFee struct {
	GasLimit string `json:"gasLimit,omitempty"`
	// GasPrice is the legacy (pre EIP-1559) gas price in gwei.
	GasPrice      string `json:"gasPrice,omitempty"`
	MaxFee        string `json:"maxFee,omitempty"`
	PriorityFee   string `json:"priorityFee,omitempty"`
	BaseFee       string `json:"baseFee,omitempty"`
	NetworkFee    string `json:"networkFee,omitempty"`
	NetworkFeeRaw string `json:"networkFeeRaw,omitempty"`
	// L1Fee is the L1 data fee on Optimism and Base.
	L1Fee string `json:"l1Fee,omitempty"`
}
