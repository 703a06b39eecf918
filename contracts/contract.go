// Copyright 2023-2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/revertfixture/blob/master/LICENSE

package contracts

import (
	"log"
	"math/big"
	"reflect"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	glog "github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"

	templates "github.com/offchainlabs/revertfixture/solgen/go/fixturesgen"
)

// A Fixture is a contract implemented in Go, callable by a test harness the
// same way an on-chain contract would be.
type Fixture interface {
	// NOTE: if fixtureAddress != actingAsAddress, this is a delegatecall
	// or callcode, so caller might be wrong.
	Call(
		input []byte,
		fixtureAddress common.Address,
		actingAsAddress common.Address,
		caller common.Address,
		value *big.Int,
		readOnly bool,
		gasSupplied uint64,
		evm *vm.EVM,
	) (output []byte, gasLeft uint64, err error)

	Contract() Contract
}

type purity uint8

const (
	pure purity = iota
	view
	write
	payable
)

type Contract struct {
	methods     map[bytes4]ContractMethod
	errors      map[bytes4]ContractError
	implementer reflect.Value
	address     common.Address
}

type ContractMethod struct {
	name        string
	template    abi.Method
	purity      purity
	handler     reflect.Method
	implementer reflect.Value
}

type ContractError struct {
	name     string
	template abi.Error
}

// Fixture ABIs keep the snake_case method names of the SDK suites they
// serve. Handlers are looked up under the CamelCase rendering, so
// make_transaction_fail binds to MakeTransactionFail.
func handlerName(rawName string) string {
	var name strings.Builder
	for _, segment := range strings.Split(rawName, "_") {
		if segment == "" {
			continue
		}
		name.WriteString(string(unicode.ToUpper(rune(segment[0]))))
		name.WriteString(segment[1:])
	}
	return name.String()
}

// Make a fixture for the given hardhat-to-geth bindings, ensuring that the
// implementer supports each method and declares each solidity error.
func makeContract(metadata *bind.MetaData, implementer interface{}) (addr, Fixture) {
	source, err := abi.JSON(strings.NewReader(metadata.ABI))
	if err != nil {
		log.Fatal("Bad ABI")
	}

	implementerType := reflect.TypeOf(implementer)
	contract := implementerType.Elem().Name()

	_, ok := implementerType.Elem().FieldByName("Address")
	if !ok {
		log.Fatal("Implementer for fixture ", contract, " is missing an Address field")
	}

	address, ok := reflect.ValueOf(implementer).Elem().FieldByName("Address").Interface().(addr)
	if !ok {
		log.Fatal("Implementer for fixture ", contract, "'s Address field has the wrong type")
	}

	methods := make(map[bytes4]ContractMethod)
	errors := make(map[bytes4]ContractError)

	for _, method := range source.Methods {

		name := handlerName(method.RawName)

		if len(method.ID) != 4 {
			log.Fatal("Method ID isn't 4 bytes")
		}
		id := *(*bytes4)(method.ID)

		// check that the implementer has a supporting implementation for this method

		handler, ok := implementerType.MethodByName(name)
		if !ok {
			log.Fatal("Fixture ", contract, " must implement ", name)
		}

		var needs = []reflect.Type{
			implementerType,            // the contract itself
			reflect.TypeOf((ctx)(nil)), // this call's context
		}

		var purity purity

		switch method.StateMutability {
		case "pure":
			purity = pure
		case "view":
			needs = append(needs, reflect.TypeOf(&vm.EVM{}))
			purity = view
		case "nonpayable":
			needs = append(needs, reflect.TypeOf(&vm.EVM{}))
			purity = write
		case "payable":
			needs = append(needs, reflect.TypeOf(&vm.EVM{}))
			needs = append(needs, reflect.TypeOf(&big.Int{}))
			purity = payable
		default:
			log.Fatal("Unknown state mutability ", method.StateMutability)
		}

		for _, arg := range method.Inputs {
			needs = append(needs, arg.Type.GetType())
		}

		var outputs = []reflect.Type{}
		for _, out := range method.Outputs {
			outputs = append(outputs, out.Type.GetType())
		}
		outputs = append(outputs, reflect.TypeOf((*error)(nil)).Elem())

		expectedHandlerType := reflect.FuncOf(needs, outputs, false)

		if handler.Type != expectedHandlerType {
			log.Fatal(
				"Fixture "+contract+"'s "+name+"'s implementer has the wrong type\n",
				"\texpected:\t", expectedHandlerType, "\n\tbut have:\t", handler.Type,
			)
		}

		methods[id] = ContractMethod{
			name,
			method,
			purity,
			handler,
			reflect.ValueOf(implementer),
		}
	}

	// provide the implementer mechanisms to produce the solidity errors,
	// which carry their ABI-packed arguments as revert data

	for _, solErr := range source.Errors {
		name := solErr.Name

		var needs = []reflect.Type{}
		for _, arg := range solErr.Inputs {
			needs = append(needs, arg.Type.GetType())
		}

		errorType := reflect.TypeOf((*error)(nil)).Elem()
		expectedFieldType := reflect.FuncOf(needs, []reflect.Type{errorType}, false)

		field, ok := implementerType.Elem().FieldByName(name + "Error")
		if !ok {
			log.Fatal(
				"Fixture ", contract, "'s implementer is missing a field for error ",
				name, " of type\n\t", expectedFieldType,
			)
		}
		if field.Type != expectedFieldType {
			log.Fatal(
				"Fixture ", contract, "'s implementer's field for error ", name,
				" has the wrong type\n", "\texpected:\t", expectedFieldType,
				"\n\tbut have:\t", field.Type,
			)
		}

		// we can't capture `solErr` since the for loop will change its value
		capturedErr := solErr
		selector := [4]byte(solErr.ID.Bytes())

		produce := func(args []reflect.Value) []reflect.Value {
			var values []interface{}
			for _, arg := range args {
				values = append(values, arg.Interface())
			}

			data, err := capturedErr.Inputs.PackValues(values)
			if err != nil {
				glog.Error("Couldn't pack values for error", "name", name, "err", err)
				return []reflect.Value{reflect.ValueOf(err)}
			}

			custom := &SolError{
				data:   append(selector[:], data...),
				solErr: capturedErr,
			}
			return []reflect.Value{reflect.ValueOf(custom)}
		}

		structFields := reflect.ValueOf(implementer).Elem()
		fieldPointer := structFields.FieldByName(name + "Error")
		fieldPointer.Set(reflect.MakeFunc(field.Type, produce))

		errors[selector] = ContractError{
			name,
			solErr,
		}
	}

	return address, Contract{
		methods,
		errors,
		reflect.ValueOf(implementer),
		address,
	}
}

// Fixtures returns the fixture contracts by address.
func Fixtures() map[addr]Fixture {

	//nolint:gocritic
	hex := func(s string) addr {
		return common.HexToAddress(s)
	}

	contracts := make(map[addr]Fixture)

	insert := func(address addr, impl Fixture) Contract {
		contracts[address] = impl
		return impl.Contract()
	}

	insert(debugOnly(makeContract(templates.RevertingContractMetaData, &RevertingContract{Address: hex("ff")})))

	return contracts
}

// Call a fixture in typed form, deserializing its inputs and serializing its
// outputs. A handler that returns a solidity error reverts with that error's
// packed data; any output values it declared are discarded.
func (p Contract) Call(
	input []byte,
	fixtureAddress common.Address,
	actingAsAddress common.Address,
	caller common.Address,
	value *big.Int,
	readOnly bool,
	gasSupplied uint64,
	evm *vm.EVM,
) (output []byte, gasLeft uint64, err error) {

	if len(input) < 4 {
		// fixtures always have canonical method selectors
		return nil, 0, vm.ErrExecutionReverted
	}
	id := *(*bytes4)(input)
	method, ok := p.methods[id]
	if !ok {
		// method does not exist
		return nil, 0, vm.ErrExecutionReverted
	}

	if method.purity >= view && actingAsAddress != fixtureAddress {
		// should not access fixture superpowers when not acting as the fixture
		return nil, 0, vm.ErrExecutionReverted
	}

	if method.purity >= write && readOnly {
		// tried to write to global state in read-only mode
		return nil, 0, vm.ErrExecutionReverted
	}

	if method.purity < payable && value.Sign() != 0 {
		// tried to pay something that's non-payable
		return nil, 0, vm.ErrExecutionReverted
	}

	callerCtx := &Context{
		caller:      caller,
		gasSupplied: gasSupplied,
		gasLeft:     gasSupplied,
		readOnly:    readOnly,
	}

	argsCost := params.CopyGas * uint64(len(input)-4)
	if err := callerCtx.Burn(argsCost); err != nil {
		// user cannot afford the argument data supplied
		return nil, 0, vm.ErrExecutionReverted
	}

	reflectArgs := []reflect.Value{
		method.implementer,
		reflect.ValueOf(callerCtx),
	}

	switch method.purity {
	case pure:
	case view:
		reflectArgs = append(reflectArgs, reflect.ValueOf(evm))
	case write:
		reflectArgs = append(reflectArgs, reflect.ValueOf(evm))
	case payable:
		reflectArgs = append(reflectArgs, reflect.ValueOf(evm))
		reflectArgs = append(reflectArgs, reflect.ValueOf(value))
	default:
		log.Fatal("Unknown state mutability ", method.purity)
	}

	args, err := method.template.Inputs.Unpack(input[4:])
	if err != nil {
		// calldata does not match the method's signature
		return nil, 0, vm.ErrExecutionReverted
	}
	for _, arg := range args {
		reflectArgs = append(reflectArgs, reflect.ValueOf(arg))
	}

	reflectResult := method.handler.Func.Call(reflectArgs)
	resultCount := len(reflectResult) - 1
	if !reflectResult[resultCount].IsNil() {
		// the last arg is always the error status
		errRet := reflectResult[resultCount].Interface().(error) //nolint:errcheck
		if custom, ok := errRet.(*SolError); ok {
			return custom.data, callerCtx.gasLeft, vm.ErrExecutionReverted
		}
		return nil, 0, errRet
	}
	result := make([]interface{}, resultCount)
	for i := 0; i < resultCount; i++ {
		result[i] = reflectResult[i].Interface()
	}

	encoded, err := method.template.Outputs.PackValues(result)
	if err != nil {
		// in production we'll just revert, but for now this
		// will catch implementation errors
		log.Fatal("Could not encode fixture result ", err)
	}

	resultCost := params.CopyGas * uint64(len(encoded))
	if err := callerCtx.Burn(resultCost); err != nil {
		// user cannot afford the result data returned
		return nil, 0, vm.ErrExecutionReverted
	}

	return encoded, callerCtx.gasLeft, nil
}

// GetErrorABIs returns the solidity errors this contract may revert with.
func (p Contract) GetErrorABIs() []abi.Error {
	errABIs := make([]abi.Error, 0, len(p.errors))
	for _, solErr := range p.errors {
		errABIs = append(errABIs, solErr.template)
	}
	return errABIs
}

func (p Contract) Contract() Contract {
	return p
}
