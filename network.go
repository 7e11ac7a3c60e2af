// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package bip85

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// Networks lists the chain parameters a root key may belong to. Test
// networks sharing version bytes resolve to the first entry.
var Networks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
	&chaincfg.SimNetParams,
}

// NetworkOf returns the chain parameters matching the version bytes of key.
func NetworkOf(key *hdkeychain.ExtendedKey) (*chaincfg.Params, error) {
	for _, net := range Networks {
		if key.IsForNet(net) {
			return net, nil
		}
	}
	return nil, ErrUnknownNetwork
}

// NetworkByName returns the chain parameters for a network name as used by
// chaincfg ("mainnet", "testnet3", "regtest", "signet", "simnet").
func NetworkByName(name string) (*chaincfg.Params, bool) {
	for _, net := range Networks {
		if net.Name == name {
			return net, true
		}
	}
	return nil, false
}
