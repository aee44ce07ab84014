package buidl

import "github.com/w3sdev/circle-go/w3s"

// Blockchain identifies a network supported by the Buidl Wallets API.
type Blockchain string

const (
	BlockchainEth          Blockchain = "ETH"
	BlockchainEthSepolia   Blockchain = "ETH-SEPOLIA"
	BlockchainMatic        Blockchain = "MATIC"
	BlockchainMaticAmoy    Blockchain = "MATIC-AMOY"
	BlockchainArb          Blockchain = "ARB"
	BlockchainArbSepolia   Blockchain = "ARB-SEPOLIA"
	BlockchainUni          Blockchain = "UNI"
	BlockchainUniSepolia   Blockchain = "UNI-SEPOLIA"
	BlockchainBase         Blockchain = "BASE"
	BlockchainBaseSepolia  Blockchain = "BASE-SEPOLIA"
	BlockchainOp           Blockchain = "OP"
	BlockchainOpSepolia    Blockchain = "OP-SEPOLIA"
	BlockchainAvax         Blockchain = "AVAX"
	BlockchainAvaxFuji     Blockchain = "AVAX-FUJI"
	BlockchainArcTestnet   Blockchain = "ARC-TESTNET"
	BlockchainMonad        Blockchain = "MONAD"
	BlockchainMonadTestnet Blockchain = "MONAD-TESTNET"
)

// BlockchainValues lists every network the API accepts.
var BlockchainValues = []Blockchain{
	BlockchainEth,
	BlockchainEthSepolia,
	BlockchainMatic,
	BlockchainMaticAmoy,
	BlockchainArb,
	BlockchainArbSepolia,
	BlockchainUni,
	BlockchainUniSepolia,
	BlockchainBase,
	BlockchainBaseSepolia,
	BlockchainOp,
	BlockchainOpSepolia,
	BlockchainAvax,
	BlockchainAvaxFuji,
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
