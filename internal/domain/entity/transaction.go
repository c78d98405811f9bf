package entity

import (
	"strconv"
)

// Transaction represents a normal transaction as reported by an
// Etherscan-compatible explorer API. Numeric fields arrive as base-10
// strings and are kept that way; wei amounts must never pass through a
// float.
type Transaction struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	Gas             string `json:"gas"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
	IsError         string `json:"isError"`
	ContractAddress string `json:"contractAddress"`
	FunctionName    string `json:"functionName"`
}

// Unix returns the transaction timestamp as Unix seconds, 0 when unparseable.
func (t *Transaction) Unix() int64 {
	ts, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

// TokenTransfer represents a single ERC-20 transfer event.
type TokenTransfer struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	Value           string `json:"value"`
}

// Unix returns the transfer timestamp as Unix seconds, 0 when unparseable.
func (t *TokenTransfer) Unix() int64 {
	ts, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

// NFTTransfer represents an ERC-721 or ERC-1155 transfer event. A mint is a
// transfer whose sender is the zero address.
type NFTTransfer struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenID"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
}

// Unix returns the transfer timestamp as Unix seconds, 0 when unparseable.
func (t *NFTTransfer) Unix() int64 {
	ts, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}

// ContractCreation records one contract deployed by the queried address.
type ContractCreation struct {
	Address   string `json:"address"`
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
}

// FirstTransaction is the oldest transaction ever seen for an address,
// regardless of the wrapped year window.
type FirstTransaction struct {
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Hash      string `json:"hash"`
}
