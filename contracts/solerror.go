// Copyright 2023-2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/revertfixture/blob/master/LICENSE

package contracts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// A SolError is a solidity custom error produced by a fixture handler. Its
// data field is the selector-prefixed ABI encoding the call reverts with.
type SolError struct {
	data   []byte
	solErr abi.Error
}

func (e *SolError) Error() string {
	rendered, err := RenderSolError(e.solErr, e.data)
	if err != nil {
		return "execution reverted"
	}
	return rendered
}

// RenderSolError renders a solidity error's revert data in a human-readable
// way, e.g. "error TransactionFailed(42)".
func RenderSolError(solErr abi.Error, data []byte) (string, error) {
	vals, err := solErr.Unpack(data)
	if err != nil {
		return "", err
	}
	valsRange, ok := vals.([]interface{})
	if !ok {
		return "", errors.New("unexpected unpack result")
	}
	strVals := make([]string, 0, len(valsRange))
	for _, val := range valsRange {
		strVals = append(strVals, fmt.Sprintf("%v", val))
	}
	return fmt.Sprintf("error %v(%v)", solErr.Name, strings.Join(strVals, ", ")), nil
}
