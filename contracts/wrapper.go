// Copyright 2023-2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/revertfixture/blob/master/LICENSE

package contracts

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
)

// A fixture wrapper for those not allowed in production
type DebugFixture struct {
	fixture Fixture
}

// A test harness may set this to true to enable debug-only fixtures
var AllowDebugFixtures = false

// create a debug-only fixture wrapper
func debugOnly(address addr, impl Fixture) (addr, Fixture) {
	return address, &DebugFixture{impl}
}

func (wrapper *DebugFixture) Call(
	input []byte,
	fixtureAddress common.Address,
	actingAsAddress common.Address,
	caller common.Address,
	value *big.Int,
	readOnly bool,
	gasSupplied uint64,
	evm *vm.EVM,
) ([]byte, uint64, error) {

	if AllowDebugFixtures {
		con := wrapper.fixture
		return con.Call(input, fixtureAddress, actingAsAddress, caller, value, readOnly, gasSupplied, evm)
	} else {
		// take all gas
		return nil, 0, errors.New("debug fixtures are disabled")
	}
}

func (wrapper *DebugFixture) Contract() Contract {
	return wrapper.fixture.Contract()
}
