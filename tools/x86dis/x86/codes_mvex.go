// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// mvexForms describes the MVEX-encoded instructions for the Knights Corner coprocessor.
var mvexForms = [...]form{
	{MVEX_Vaddps_zmm_k1_zmm_zmmmt, "vaddps", "MVEX.512.0F.W0 58 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask},
	{MVEX_Vmulps_zmm_k1_zmm_zmmmt, "vmulps", "MVEX.512.0F.W0 59 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask},
	{MVEX_Vsubps_zmm_k1_zmm_zmmmt, "vsubps", "MVEX.512.0F.W0 5C /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask},
	{MVEX_Vpaddd_zmm_k1_zmm_zmmmt, "vpaddd", "MVEX.512.66.0F.W0 FE /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask},
	{MVEX_Vfmadd231ps_zmm_k1_zmm_zmmmt, "vfmadd231ps", "MVEX.512.66.0F38.W0 B8 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask},
	{MVEX_Vmovaps_zmm_k1_zmmmt, "vmovaps", "MVEX.512.0F.W0 28 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask},
	{MVEX_Vmovaps_mt_k1_zmm, "vmovaps", "MVEX.512.0F.W0 29 /r", kinds{Op_mem, Op_zmm_reg}, MemorySizePacked512_Float32, flagOpMask},
	{MVEX_Vmovdqa32_zmm_k1_zmmmt, "vmovdqa32", "MVEX.512.66.0F.W0 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask},
	{MVEX_Vmovdqa32_mt_k1_zmm, "vmovdqa32", "MVEX.512.66.0F.W0 7F /r", kinds{Op_mem, Op_zmm_reg}, MemorySizePacked512_Int32, flagOpMask},
	{MVEX_Vpgatherdd_zmm_k1_mvt, "vpgatherdd", "MVEX.512.66.0F38.W0 90 /r /vsib", kinds{Op_zmm_reg, Op_mem_vsib32z}, MemorySizePacked512_Int32, flagOpMask | flagRequireOpMask},
	{MVEX_Vpscatterdd_mvt_k1_zmm, "vpscatterdd", "MVEX.512.66.0F38.W0 A0 /r /vsib", kinds{Op_mem_vsib32z, Op_zmm_reg}, MemorySizePacked512_Int32, flagOpMask | flagRequireOpMask},
}
