package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// CheckWitnessWithPanic checks witness of the passed caller and panics with
// the given message if the transaction is not witnessed by it.
func CheckWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
