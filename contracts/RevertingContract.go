// Copyright 2023-2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/revertfixture/blob/master/LICENSE

package contracts

import "github.com/holiman/uint256"

// RevertingContract gives SDK integration tests a call that deterministically
// fails. All calls are authorized by the DebugFixture wrapper, which ensures
// the contract is not accessible in production.
type RevertingContract struct {
	Address addr // 0xff

	TransactionFailedError func(uint64) error
}

//nolint:unused
var zeroValue = uint256.NewInt(0)

// MakeTransactionFail reverts with the given input as the failure code. The
// literal success value is never observed, since outputs are discarded when
// the handler errors.
func (con RevertingContract) MakeTransactionFail(c ctx, input uint64) (uint64, error) {
	return 42, con.TransactionFailedError(input)
}
