// Copyright 2023-2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/revertfixture/blob/master/LICENSE

package contracts

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/google/go-cmp/cmp"

	templates "github.com/offchainlabs/revertfixture/solgen/go/fixturesgen"
	"github.com/offchainlabs/revertfixture/util/testhelpers"
)

func revertingContractABI(t *testing.T) abi.ABI {
	t.Helper()
	source, err := abi.JSON(strings.NewReader(templates.RevertingContractMetaData.ABI))
	Require(t, err, "failed to parse fixture ABI")
	return source
}

func callMakeTransactionFail(t *testing.T, input uint64) ([]byte, uint64, error) {
	t.Helper()
	AllowDebugFixtures = true

	fixtureAddr := common.HexToAddress("ff")
	fixture, ok := Fixtures()[fixtureAddr]
	if !ok {
		testhelpers.FailImpl(t, "no fixture registered at", fixtureAddr)
	}

	source := revertingContractABI(t)
	calldata, err := source.Pack("make_transaction_fail", input)
	Require(t, err, "failed to pack calldata")

	caller := testhelpers.RandomAddress()
	gasSupplied := uint64(1_000_000)

	return fixture.Call(
		calldata,
		fixtureAddr,
		fixtureAddr,
		caller,
		big.NewInt(0),
		false,
		gasSupplied,
		&vm.EVM{},
	)
}

func unpackFailureCode(t *testing.T, source abi.ABI, revertData []byte) uint64 {
	t.Helper()
	solErr, ok := source.Errors["TransactionFailed"]
	if !ok {
		testhelpers.FailImpl(t, "fixture ABI is missing the TransactionFailed error")
	}
	vals, err := solErr.Unpack(revertData)
	Require(t, err, "failed to unpack revert data")
	valsRange, ok := vals.([]interface{})
	if !ok || len(valsRange) != 1 {
		testhelpers.FailImpl(t, "unexpected unpack result", vals)
	}
	code, ok := valsRange[0].(uint64)
	if !ok {
		testhelpers.FailImpl(t, "failure code has the wrong type", valsRange[0])
	}
	return code
}

func TestMakeTransactionFailRevertsWithCode(t *testing.T) {
	source := revertingContractABI(t)

	inputs := []uint64{
		0,
		42,
		math.MaxUint64,
		testhelpers.RandomUint64(1, math.MaxUint64-1),
	}

	for _, input := range inputs {
		output, gasLeft, err := callMakeTransactionFail(t, input)
		if err != vm.ErrExecutionReverted {
			testhelpers.FailImpl(t, "expected an execution revert, got", err)
		}
		if gasLeft == 0 {
			testhelpers.FailImpl(t, "a revert should refund the gas that's left")
		}

		selector := source.Errors["TransactionFailed"].ID.Bytes()[:4]
		if len(output) < 4 || !cmp.Equal(output[:4], selector) {
			testhelpers.FailImpl(t, "revert data doesn't carry the TransactionFailed selector", output)
		}

		code := unpackFailureCode(t, source, output)
		if code != input {
			testhelpers.FailImpl(t, "wrong failure code", code, "instead of", input)
		}
	}
}

func TestMakeTransactionFailNeverSucceeds(t *testing.T) {
	// a success would produce packed outputs and a nil error, which must
	// never happen for any input
	for i := 0; i < 100; i++ {
		input := testhelpers.RandomUint64(0, math.MaxUint64-1)
		_, _, err := callMakeTransactionFail(t, input)
		if err == nil {
			testhelpers.FailImpl(t, "fixture call succeeded for input", input)
		}
	}
}

func TestMakeTransactionFailIsIdempotent(t *testing.T) {
	source := revertingContractABI(t)

	first, _, err := callMakeTransactionFail(t, 42)
	if err != vm.ErrExecutionReverted {
		testhelpers.FailImpl(t, "expected an execution revert, got", err)
	}
	second, _, err := callMakeTransactionFail(t, 42)
	if err != vm.ErrExecutionReverted {
		testhelpers.FailImpl(t, "expected an execution revert, got", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		testhelpers.FailImpl(t, "repeated calls diverged", diff)
	}
	if code := unpackFailureCode(t, source, second); code != 42 {
		testhelpers.FailImpl(t, "wrong failure code", code)
	}
}

func TestMakeTransactionFailHandler(t *testing.T) {
	con := &RevertingContract{Address: common.HexToAddress("ff")}
	makeContract(templates.RevertingContractMetaData, con)

	_, err := con.MakeTransactionFail(testContext(testhelpers.RandomAddress()), 42)
	if err == nil {
		testhelpers.FailImpl(t, "the handler must always error")
	}
	if _, ok := err.(*SolError); !ok {
		testhelpers.FailImpl(t, "the handler must revert with a solidity error, got", err)
	}
	if err.Error() != "error TransactionFailed(42)" {
		testhelpers.FailImpl(t, "unexpected rendering", err.Error())
	}
}

func Require(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	testhelpers.RequireImpl(t, err, printables...)
}
