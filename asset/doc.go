// Package asset loads templated asset definitions.
//
// An asset directory carries an io.yaml definition naming the asset and
// its inputs and outputs. Definitions may embed {{ expression }} tokens
// rendered against the environment settings before decoding; rendering
// is strict, so a token naming an undefined variable fails the load.
package asset
