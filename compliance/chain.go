package compliance

import "github.com/w3sdev/circle-go/w3s"

// Chain identifies a network supported by address screening. The set is
// wider than the wallet surfaces: screening also covers chains Circle does
// not custody wallets on.
type Chain string

const (
	ChainEth        Chain = "ETH"
	ChainEthSepolia Chain = "ETH-SEPOLIA"
	ChainAvax       Chain = "AVAX"
	ChainAvaxFuji   Chain = "AVAX-FUJI"
	ChainMatic      Chain = "MATIC"
	ChainMaticAmoy  Chain = "MATIC-AMOY"
	ChainAlgo       Chain = "ALGO"
	ChainAtom       Chain = "ATOM"
	ChainArb        Chain = "ARB"
	ChainArbSepolia Chain = "ARB-SEPOLIA"
	ChainHbar       Chain = "HBAR"
	ChainSol        Chain = "SOL"
	ChainSolDevnet  Chain = "SOL-DEVNET"
	ChainUni        Chain = "UNI"
	ChainUniSepolia Chain = "UNI-SEPOLIA"
	ChainTrx        Chain = "TRX"
	ChainXlm        Chain = "XLM"
	ChainBch        Chain = "BCH"
	ChainBtc        Chain = "BTC"
	ChainBsv        Chain = "BSV"
	ChainEtc        Chain = "ETC"
	ChainLtc        Chain = "LTC"
	ChainXmr        Chain = "XMR"
	ChainXrp        Chain = "XRP"
	ChainZrx        Chain = "ZRX"
	ChainOp         Chain = "OP"
	ChainDot        Chain = "DOT"
)

// ChainValues lists every network address screening accepts.
var ChainValues = []Chain{
	ChainEth,
	ChainEthSepolia,
	ChainAvax,
	ChainAvaxFuji,
	ChainMatic,
	ChainMaticAmoy,
	ChainAlgo,
	ChainAtom,
	ChainArb,
	ChainArbSepolia,
	ChainHbar,
	ChainSol,
	ChainSolDevnet,
	ChainUni,
	ChainUniSepolia,
	ChainTrx,
	ChainXlm,
	ChainBch,
	ChainBtc,
	ChainBsv,
	ChainEtc,
	ChainLtc,
	ChainXmr,
	ChainXrp,
	ChainZrx,
	ChainOp,
	ChainDot,
}

// ParseChain validates a wire value such as "BTC".
func ParseChain(s string) (Chain, error) {
	return w3s.ParseEnum("chain", s, ChainValues)
}

// UnmarshalJSON rejects values outside the known set.
func (c *Chain) UnmarshalJSON(data []byte) error {
	v, err := w3s.UnmarshalEnum("chain", data, ChainValues)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
