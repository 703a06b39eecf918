// Copyright 2023-2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/revertfixture/blob/master/LICENSE

package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
)

type addr = common.Address
type mech = *vm.EVM
type huge = *big.Int
type hash = common.Hash
type bytes4 = [4]byte
type bytes32 = [32]byte
type ctx = *Context

// Context of a single fixture call. The fixtures hold no chain state, so the
// context is just the caller and a gas meter.
type Context struct {
	caller      addr
	gasSupplied uint64
	gasLeft     uint64
	readOnly    bool
}

func (c *Context) Burn(amount uint64) error {
	if c.gasLeft < amount {
		return c.BurnOut()
	}
	c.gasLeft -= amount
	return nil
}

//nolint:unused
func (c *Context) Burned() uint64 {
	return c.gasSupplied - c.gasLeft
}

func (c *Context) BurnOut() error {
	c.gasLeft = 0
	return vm.ErrOutOfGas
}

func (c *Context) GasLeft() uint64 {
	return c.gasLeft
}

func (c *Context) ReadOnly() bool {
	return c.readOnly
}

func testContext(caller addr) *Context {
	return &Context{
		caller:      caller,
		gasSupplied: ^uint64(0),
		gasLeft:     ^uint64(0),
		readOnly:    false,
	}
}
