// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package formatter

import (
	"strings"
)

// pseudoOps is a family of mnemonics that
// replace an instruction's final 8-bit
// immediate, such as cmpeqps for cmpps
// with a predicate of 0.
type pseudoOps struct {
	prefix string
	suffix string
	names  []string // Indexed by immediate. Empty names have no pseudo-op.
}

// mnemonic returns the pseudo-op for the
// immediate, if any.
func (p *pseudoOps) mnemonic(imm uint8) (string, bool) {
	if int(imm) >= len(p.names) || p.names[imm] == "" {
		return "", false
	}

	return p.prefix + p.names[imm] + p.suffix, true
}

var (
	// SSE comparison predicates.
	ssePredicates = []string{
		"eq", "lt", "le", "unord", "neq", "nlt", "nle", "ord",
	}

	// AVX comparison predicates.
	avxPredicates = []string{
		"eq", "lt", "le", "unord", "neq", "nlt", "nle", "ord",
		"eq_uq", "nge", "ngt", "false", "neq_oq", "ge", "gt", "true",
		"eq_os", "lt_oq", "le_oq", "unord_s", "neq_us", "nlt_uq", "nle_uq", "ord_s",
		"eq_us", "nge_uq", "ngt_uq", "false_os", "neq_os", "ge_oq", "gt_oq", "true_us",
	}

	// AVX-512 integer comparison predicates.
	vpcmpPredicates = []string{
		"eq", "lt", "le", "false", "neq", "nlt", "nle", "true",
	}

	// XOP integer comparison predicates.
	vpcomPredicates = []string{
		"lt", "le", "gt", "ge", "eq", "neq", "false", "true",
	}

	// Carry-less multiplication selects
	// the low or high quadword of each
	// source with bits 0 and 4.
	pclmulqdqPredicates = func() []string {
		names := make([]string, 0x12)
		names[0x00] = "lqlq"
		names[0x01] = "hqlq"
		names[0x10] = "lqhq"
		names[0x11] = "hqhq"
		return names
	}()
)

// pseudoOpsFor returns the pseudo-op
// family for the mnemonic of an
// instruction whose final operand is an
// 8-bit immediate.
func pseudoOpsFor(mnemonic string) *pseudoOps {
	switch mnemonic {
	case "cmpps", "cmppd", "cmpss", "cmpsd":
		return &pseudoOps{prefix: "cmp", suffix: strings.TrimPrefix(mnemonic, "cmp"), names: ssePredicates}
	case "vcmpps", "vcmppd", "vcmpss", "vcmpsd", "vcmpph", "vcmpsh":
		return &pseudoOps{prefix: "vcmp", suffix: strings.TrimPrefix(mnemonic, "vcmp"), names: avxPredicates}
	case "vpcmpb", "vpcmpw", "vpcmpd", "vpcmpq", "vpcmpub", "vpcmpuw", "vpcmpud", "vpcmpuq":
		return &pseudoOps{prefix: "vpcmp", suffix: strings.TrimPrefix(mnemonic, "vpcmp"), names: vpcmpPredicates}
	case "vpcomb", "vpcomw", "vpcomd", "vpcomq", "vpcomub", "vpcomuw", "vpcomud", "vpcomuq":
		return &pseudoOps{prefix: "vpcom", suffix: strings.TrimPrefix(mnemonic, "vpcom"), names: vpcomPredicates}
	case "pclmulqdq", "vpclmulqdq":
		return &pseudoOps{prefix: strings.TrimSuffix(mnemonic, "qdq"), suffix: "dq", names: pclmulqdqPredicates}
	}

	return nil
}
