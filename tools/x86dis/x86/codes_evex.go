// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// evexForms describes the EVEX-encoded instructions.
var evexForms = [...]vectorForm{
	{form{EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32, "vaddps", "EVEX.128.0F.W0 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32, "vaddps", "EVEX.256.0F.W0 58 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er, "vaddps", "EVEX.512.0F.W0 58 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vaddpd_xmm_k1z_xmm_xmmm128b64, "vaddpd", "EVEX.128.66.0F.W1 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vaddpd_ymm_k1z_ymm_ymmm256b64, "vaddpd", "EVEX.256.66.0F.W1 58 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er, "vaddpd", "EVEX.512.66.0F.W1 58 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vaddss_xmm_k1z_xmm_xmmm32_er, "vaddss", "EVEX.LIG.F3.0F.W0 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vaddsd_xmm_k1z_xmm_xmmm64_er, "vaddsd", "EVEX.LIG.F2.0F.W1 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vmulps_xmm_k1z_xmm_xmmm128b32, "vmulps", "EVEX.128.0F.W0 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vmulps_ymm_k1z_ymm_ymmm256b32, "vmulps", "EVEX.256.0F.W0 59 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vmulps_zmm_k1z_zmm_zmmm512b32_er, "vmulps", "EVEX.512.0F.W0 59 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vmulpd_xmm_k1z_xmm_xmmm128b64, "vmulpd", "EVEX.128.66.0F.W1 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vmulpd_ymm_k1z_ymm_ymmm256b64, "vmulpd", "EVEX.256.66.0F.W1 59 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vmulpd_zmm_k1z_zmm_zmmm512b64_er, "vmulpd", "EVEX.512.66.0F.W1 59 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vmulss_xmm_k1z_xmm_xmmm32_er, "vmulss", "EVEX.LIG.F3.0F.W0 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vmulsd_xmm_k1z_xmm_xmmm64_er, "vmulsd", "EVEX.LIG.F2.0F.W1 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vsubps_xmm_k1z_xmm_xmmm128b32, "vsubps", "EVEX.128.0F.W0 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vsubps_ymm_k1z_ymm_ymmm256b32, "vsubps", "EVEX.256.0F.W0 5C /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vsubps_zmm_k1z_zmm_zmmm512b32_er, "vsubps", "EVEX.512.0F.W0 5C /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vsubpd_xmm_k1z_xmm_xmmm128b64, "vsubpd", "EVEX.128.66.0F.W1 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vsubpd_ymm_k1z_ymm_ymmm256b64, "vsubpd", "EVEX.256.66.0F.W1 5C /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vsubpd_zmm_k1z_zmm_zmmm512b64_er, "vsubpd", "EVEX.512.66.0F.W1 5C /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vsubss_xmm_k1z_xmm_xmmm32_er, "vsubss", "EVEX.LIG.F3.0F.W0 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vsubsd_xmm_k1z_xmm_xmmm64_er, "vsubsd", "EVEX.LIG.F2.0F.W1 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vdivps_xmm_k1z_xmm_xmmm128b32, "vdivps", "EVEX.128.0F.W0 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vdivps_ymm_k1z_ymm_ymmm256b32, "vdivps", "EVEX.256.0F.W0 5E /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vdivps_zmm_k1z_zmm_zmmm512b32_er, "vdivps", "EVEX.512.0F.W0 5E /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vdivpd_xmm_k1z_xmm_xmmm128b64, "vdivpd", "EVEX.128.66.0F.W1 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vdivpd_ymm_k1z_ymm_ymmm256b64, "vdivpd", "EVEX.256.66.0F.W1 5E /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vdivpd_zmm_k1z_zmm_zmmm512b64_er, "vdivpd", "EVEX.512.66.0F.W1 5E /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vdivss_xmm_k1z_xmm_xmmm32_er, "vdivss", "EVEX.LIG.F3.0F.W0 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vdivsd_xmm_k1z_xmm_xmmm64_er, "vdivsd", "EVEX.LIG.F2.0F.W1 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing | flagER}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vminps_xmm_k1z_xmm_xmmm128b32, "vminps", "EVEX.128.0F.W0 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vminps_ymm_k1z_ymm_ymmm256b32, "vminps", "EVEX.256.0F.W0 5D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vminps_zmm_k1z_zmm_zmmm512b32_sae, "vminps", "EVEX.512.0F.W0 5D /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vminpd_xmm_k1z_xmm_xmmm128b64, "vminpd", "EVEX.128.66.0F.W1 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vminpd_ymm_k1z_ymm_ymmm256b64, "vminpd", "EVEX.256.66.0F.W1 5D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vminpd_zmm_k1z_zmm_zmmm512b64_sae, "vminpd", "EVEX.512.66.0F.W1 5D /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vminss_xmm_k1z_xmm_xmmm32_sae, "vminss", "EVEX.LIG.F3.0F.W0 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing | flagSAE}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vminsd_xmm_k1z_xmm_xmmm64_sae, "vminsd", "EVEX.LIG.F2.0F.W1 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing | flagSAE}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vmaxps_xmm_k1z_xmm_xmmm128b32, "vmaxps", "EVEX.128.0F.W0 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vmaxps_ymm_k1z_ymm_ymmm256b32, "vmaxps", "EVEX.256.0F.W0 5F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae, "vmaxps", "EVEX.512.0F.W0 5F /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vmaxpd_xmm_k1z_xmm_xmmm128b64, "vmaxpd", "EVEX.128.66.0F.W1 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vmaxpd_ymm_k1z_ymm_ymmm256b64, "vmaxpd", "EVEX.256.66.0F.W1 5F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vmaxpd_zmm_k1z_zmm_zmmm512b64_sae, "vmaxpd", "EVEX.512.66.0F.W1 5F /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vmaxss_xmm_k1z_xmm_xmmm32_sae, "vmaxss", "EVEX.LIG.F3.0F.W0 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing | flagSAE}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vmaxsd_xmm_k1z_xmm_xmmm64_sae, "vmaxsd", "EVEX.LIG.F2.0F.W1 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing | flagSAE}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vsqrtps_xmm_k1z_xmmm128b32, "vsqrtps", "EVEX.128.0F.W0 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vsqrtps_ymm_k1z_ymmm256b32, "vsqrtps", "EVEX.256.0F.W0 51 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vsqrtps_zmm_k1z_zmmm512b32_er, "vsqrtps", "EVEX.512.0F.W0 51 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vsqrtpd_xmm_k1z_xmmm128b64, "vsqrtpd", "EVEX.128.66.0F.W1 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vsqrtpd_ymm_k1z_ymmm256b64, "vsqrtpd", "EVEX.256.66.0F.W1 51 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vsqrtpd_zmm_k1z_zmmm512b64_er, "vsqrtpd", "EVEX.512.66.0F.W1 51 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vmovups_xmm_k1z_xmmm128, "vmovups", "EVEX.128.0F.W0 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovups_ymm_k1z_ymmm256, "vmovups", "EVEX.256.0F.W0 10 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovups_zmm_k1z_zmmm512, "vmovups", "EVEX.512.0F.W0 10 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovups_xmmm128_k1_xmm, "vmovups", "EVEX.128.0F.W0 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovups_ymmm256_k1_ymm, "vmovups", "EVEX.256.0F.W0 11 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovups_zmmm512_k1_zmm, "vmovups", "EVEX.512.0F.W0 11 /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Float32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovupd_xmm_k1z_xmmm128, "vmovupd", "EVEX.128.66.0F.W1 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovupd_ymm_k1z_ymmm256, "vmovupd", "EVEX.256.66.0F.W1 10 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovupd_zmm_k1z_zmmm512, "vmovupd", "EVEX.512.66.0F.W1 10 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovupd_xmmm128_k1_xmm, "vmovupd", "EVEX.128.66.0F.W1 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovupd_ymmm256_k1_ymm, "vmovupd", "EVEX.256.66.0F.W1 11 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovupd_zmmm512_k1_zmm, "vmovupd", "EVEX.512.66.0F.W1 11 /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Float64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovaps_xmm_k1z_xmmm128, "vmovaps", "EVEX.128.0F.W0 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovaps_ymm_k1z_ymmm256, "vmovaps", "EVEX.256.0F.W0 28 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovaps_zmm_k1z_zmmm512, "vmovaps", "EVEX.512.0F.W0 28 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovaps_xmmm128_k1_xmm, "vmovaps", "EVEX.128.0F.W0 29 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovaps_ymmm256_k1_ymm, "vmovaps", "EVEX.256.0F.W0 29 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovaps_zmmm512_k1_zmm, "vmovaps", "EVEX.512.0F.W0 29 /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Float32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovapd_xmm_k1z_xmmm128, "vmovapd", "EVEX.128.66.0F.W1 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovapd_ymm_k1z_ymmm256, "vmovapd", "EVEX.256.66.0F.W1 28 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovapd_zmm_k1z_zmmm512, "vmovapd", "EVEX.512.66.0F.W1 28 /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovapd_xmmm128_k1_xmm, "vmovapd", "EVEX.128.66.0F.W1 29 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovapd_ymmm256_k1_ymm, "vmovapd", "EVEX.256.66.0F.W1 29 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovapd_zmmm512_k1_zmm, "vmovapd", "EVEX.512.66.0F.W1 29 /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Float64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa32_xmm_k1z_xmmm128, "vmovdqa32", "EVEX.128.66.0F.W0 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa32_ymm_k1z_ymmm256, "vmovdqa32", "EVEX.256.66.0F.W0 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa32_zmm_k1z_zmmm512, "vmovdqa32", "EVEX.512.66.0F.W0 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa32_zmmm512_k1_zmm, "vmovdqa32", "EVEX.512.66.0F.W0 7F /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Int32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa64_xmm_k1z_xmmm128, "vmovdqa64", "EVEX.128.66.0F.W1 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa64_ymm_k1z_ymmm256, "vmovdqa64", "EVEX.256.66.0F.W1 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa64_zmm_k1z_zmmm512, "vmovdqa64", "EVEX.512.66.0F.W1 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa64_zmmm512_k1_zmm, "vmovdqa64", "EVEX.512.66.0F.W1 7F /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Int64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu32_xmm_k1z_xmmm128, "vmovdqu32", "EVEX.128.F3.0F.W0 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu32_ymm_k1z_ymmm256, "vmovdqu32", "EVEX.256.F3.0F.W0 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu32_zmm_k1z_zmmm512, "vmovdqu32", "EVEX.512.F3.0F.W0 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu32_zmmm512_k1_zmm, "vmovdqu32", "EVEX.512.F3.0F.W0 7F /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Int32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu64_xmm_k1z_xmmm128, "vmovdqu64", "EVEX.128.F3.0F.W1 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu64_ymm_k1z_ymmm256, "vmovdqu64", "EVEX.256.F3.0F.W1 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu64_zmm_k1z_zmmm512, "vmovdqu64", "EVEX.512.F3.0F.W1 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu64_zmmm512_k1_zmm, "vmovdqu64", "EVEX.512.F3.0F.W1 7F /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Int64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu8_zmm_k1z_zmmm512, "vmovdqu8", "EVEX.512.F2.0F.W0 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu16_zmm_k1z_zmmm512, "vmovdqu16", "EVEX.512.F2.0F.W1 6F /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpxord_xmm_k1z_xmm_xmmm128b32, "vpxord", "EVEX.128.66.0F.W0 EF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpxord_ymm_k1z_ymm_ymmm256b32, "vpxord", "EVEX.256.66.0F.W0 EF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpxord_zmm_k1z_zmm_zmmm512b32, "vpxord", "EVEX.512.66.0F.W0 EF /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpxorq_xmm_k1z_xmm_xmmm128b64, "vpxorq", "EVEX.128.66.0F.W1 EF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpxorq_ymm_k1z_ymm_ymmm256b64, "vpxorq", "EVEX.256.66.0F.W1 EF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpxorq_zmm_k1z_zmm_zmmm512b64, "vpxorq", "EVEX.512.66.0F.W1 EF /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpandd_xmm_k1z_xmm_xmmm128b32, "vpandd", "EVEX.128.66.0F.W0 DB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpandd_ymm_k1z_ymm_ymmm256b32, "vpandd", "EVEX.256.66.0F.W0 DB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32, "vpandd", "EVEX.512.66.0F.W0 DB /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpandq_xmm_k1z_xmm_xmmm128b64, "vpandq", "EVEX.128.66.0F.W1 DB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpandq_ymm_k1z_ymm_ymmm256b64, "vpandq", "EVEX.256.66.0F.W1 DB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64, "vpandq", "EVEX.512.66.0F.W1 DB /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpord_xmm_k1z_xmm_xmmm128b32, "vpord", "EVEX.128.66.0F.W0 EB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpord_ymm_k1z_ymm_ymmm256b32, "vpord", "EVEX.256.66.0F.W0 EB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpord_zmm_k1z_zmm_zmmm512b32, "vpord", "EVEX.512.66.0F.W0 EB /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vporq_xmm_k1z_xmm_xmmm128b64, "vporq", "EVEX.128.66.0F.W1 EB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vporq_ymm_k1z_ymm_ymmm256b64, "vporq", "EVEX.256.66.0F.W1 EB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vporq_zmm_k1z_zmm_zmmm512b64, "vporq", "EVEX.512.66.0F.W1 EB /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32, "vpaddd", "EVEX.128.66.0F.W0 FE /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpaddd_ymm_k1z_ymm_ymmm256b32, "vpaddd", "EVEX.256.66.0F.W0 FE /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32, "vpaddd", "EVEX.512.66.0F.W0 FE /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpaddq_xmm_k1z_xmm_xmmm128b64, "vpaddq", "EVEX.128.66.0F.W1 D4 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpaddq_ymm_k1z_ymm_ymmm256b64, "vpaddq", "EVEX.256.66.0F.W1 D4 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64, "vpaddq", "EVEX.512.66.0F.W1 D4 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpsubd_xmm_k1z_xmm_xmmm128b32, "vpsubd", "EVEX.128.66.0F.W0 FA /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpsubd_ymm_k1z_ymm_ymmm256b32, "vpsubd", "EVEX.256.66.0F.W0 FA /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpsubd_zmm_k1z_zmm_zmmm512b32, "vpsubd", "EVEX.512.66.0F.W0 FA /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpmulld_xmm_k1z_xmm_xmmm128b32, "vpmulld", "EVEX.128.66.0F38.W0 40 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpmulld_ymm_k1z_ymm_ymmm256b32, "vpmulld", "EVEX.256.66.0F38.W0 40 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpmulld_zmm_k1z_zmm_zmmm512b32, "vpmulld", "EVEX.512.66.0F38.W0 40 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpaddb_xmm_k1z_xmm_xmmm128, "vpaddb", "EVEX.128.66.0F.WIG FC /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpaddb_ymm_k1z_ymm_ymmm256, "vpaddb", "EVEX.256.66.0F.WIG FC /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpaddb_zmm_k1z_zmm_zmmm512, "vpaddb", "EVEX.512.66.0F.WIG FC /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vcvtne2ps2bf16_xmm_k1z_xmm_xmmm128b32, "vcvtne2ps2bf16", "EVEX.128.F2.0F38.W0 72 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vcvtne2ps2bf16_ymm_k1z_ymm_ymmm256b32, "vcvtne2ps2bf16", "EVEX.256.F2.0F38.W0 72 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vcvtne2ps2bf16_zmm_k1z_zmm_zmmm512b32, "vcvtne2ps2bf16", "EVEX.512.F2.0F38.W0 72 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vdpbf16ps_xmm_k1z_xmm_xmmm128b32, "vdpbf16ps", "EVEX.128.F3.0F38.W0 52 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vdpbf16ps_ymm_k1z_ymm_ymmm256b32, "vdpbf16ps", "EVEX.256.F3.0F38.W0 52 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vdpbf16ps_zmm_k1z_zmm_zmmm512b32, "vdpbf16ps", "EVEX.512.F3.0F38.W0 52 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vcvtneps2bf16_xmm_k1z_xmmm128b32, "vcvtneps2bf16", "EVEX.128.F3.0F38.W0 72 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vcvtneps2bf16_xmm_k1z_ymmm256b32, "vcvtneps2bf16", "EVEX.256.F3.0F38.W0 72 /r", kinds{Op_xmm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vcvtneps2bf16_ymm_k1z_zmmm512b32, "vcvtneps2bf16", "EVEX.512.F3.0F38.W0 72 /r", kinds{Op_ymm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vfmadd231ps_xmm_k1z_xmm_xmmm128b32, "vfmadd231ps", "EVEX.128.66.0F38.W0 B8 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vfmadd231ps_ymm_k1z_ymm_ymmm256b32, "vfmadd231ps", "EVEX.256.66.0F38.W0 B8 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vfmadd231ps_zmm_k1z_zmm_zmmm512b32_er, "vfmadd231ps", "EVEX.512.66.0F38.W0 B8 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vfmadd231pd_xmm_k1z_xmm_xmmm128b64, "vfmadd231pd", "EVEX.128.66.0F38.W1 B8 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vfmadd231pd_ymm_k1z_ymm_ymmm256b64, "vfmadd231pd", "EVEX.256.66.0F38.W1 B8 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vfmadd231pd_zmm_k1z_zmm_zmmm512b64_er, "vfmadd231pd", "EVEX.512.66.0F38.W1 B8 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float64, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vaddph_xmm_k1z_xmm_xmmm128b16, "vaddph", "EVEX.128.MAP5.W0 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float16, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float16, TupleFull},
	{form{EVEX_Vaddph_ymm_k1z_ymm_ymmm256b16, "vaddph", "EVEX.256.MAP5.W0 58 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float16, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float16, TupleFull},
	{form{EVEX_Vaddph_zmm_k1z_zmm_zmmm512b16_er, "vaddph", "EVEX.512.MAP5.W0 58 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Float16, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float16, TupleFull},
	{form{EVEX_Vpternlogd_xmm_k1z_xmm_xmmm128b32_imm8, "vpternlogd", "EVEX.128.66.0F3A.W0 25 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpternlogd_ymm_k1z_ymm_ymmm256b32_imm8, "vpternlogd", "EVEX.256.66.0F3A.W0 25 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8, "vpternlogd", "EVEX.512.66.0F3A.W0 25 /r ib", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpternlogq_xmm_k1z_xmm_xmmm128b64_imm8, "vpternlogq", "EVEX.128.66.0F3A.W1 25 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpternlogq_ymm_k1z_ymm_ymmm256b64_imm8, "vpternlogq", "EVEX.256.66.0F3A.W1 25 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpternlogq_zmm_k1z_zmm_zmmm512b64_imm8, "vpternlogq", "EVEX.512.66.0F3A.W1 25 /r ib", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vcmpps_kr_k1_xmm_xmmm128b32_imm8, "vcmpps", "EVEX.128.0F.W0 C2 /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vcmpps_kr_k1_ymm_ymmm256b32_imm8, "vcmpps", "EVEX.256.0F.W0 C2 /r ib", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Float32, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vcmpps_kr_k1_zmm_zmmm512b32_imm8_sae, "vcmpps", "EVEX.512.0F.W0 C2 /r ib", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Float32, flagOpMask | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vcmppd_kr_k1_xmm_xmmm128b64_imm8, "vcmppd", "EVEX.128.66.0F.W1 C2 /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_Float64, TupleFull},
	{form{EVEX_Vcmppd_kr_k1_ymm_ymmm256b64_imm8, "vcmppd", "EVEX.256.66.0F.W1 C2 /r ib", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Float64, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_Float64, TupleFull},
	{form{EVEX_Vcmppd_kr_k1_zmm_zmmm512b64_imm8_sae, "vcmppd", "EVEX.512.66.0F.W1 C2 /r ib", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Float64, flagOpMask | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float64, TupleFull},
	{form{EVEX_Vpcmpd_kr_k1_xmm_xmmm128b32_imm8, "vpcmpd", "EVEX.128.66.0F3A.W0 1F /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int32, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpcmpd_kr_k1_ymm_ymmm256b32_imm8, "vpcmpd", "EVEX.256.66.0F3A.W0 1F /r ib", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Int32, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpcmpd_kr_k1_zmm_zmmm512b32_imm8, "vpcmpd", "EVEX.512.66.0F3A.W0 1F /r ib", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Int32, flagOpMask | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpcmpud_kr_k1_xmm_xmmm128b32_imm8, "vpcmpud", "EVEX.128.66.0F3A.W0 1E /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt32, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_UInt32, TupleFull},
	{form{EVEX_Vpcmpud_kr_k1_ymm_ymmm256b32_imm8, "vpcmpud", "EVEX.256.66.0F3A.W0 1E /r ib", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_UInt32, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_UInt32, TupleFull},
	{form{EVEX_Vpcmpud_kr_k1_zmm_zmmm512b32_imm8, "vpcmpud", "EVEX.512.66.0F3A.W0 1E /r ib", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_UInt32, flagOpMask | flagBroadcast}, MemorySizeBroadcast512_UInt32, TupleFull},
	{form{EVEX_Vpcmpq_kr_k1_xmm_xmmm128b64_imm8, "vpcmpq", "EVEX.128.66.0F3A.W1 1F /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpcmpq_kr_k1_ymm_ymmm256b64_imm8, "vpcmpq", "EVEX.256.66.0F3A.W1 1F /r ib", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpcmpq_kr_k1_zmm_zmmm512b64_imm8, "vpcmpq", "EVEX.512.66.0F3A.W1 1F /r ib", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpcmpuq_kr_k1_xmm_xmmm128b64_imm8, "vpcmpuq", "EVEX.128.66.0F3A.W1 1E /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt64, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_UInt64, TupleFull},
	{form{EVEX_Vpcmpuq_kr_k1_ymm_ymmm256b64_imm8, "vpcmpuq", "EVEX.256.66.0F3A.W1 1E /r ib", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_UInt64, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_UInt64, TupleFull},
	{form{EVEX_Vpcmpuq_kr_k1_zmm_zmmm512b64_imm8, "vpcmpuq", "EVEX.512.66.0F3A.W1 1E /r ib", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_UInt64, flagOpMask | flagBroadcast}, MemorySizeBroadcast512_UInt64, TupleFull},
	{form{EVEX_Vcmpss_kr_k1_xmm_xmmm32_imm8_sae, "vcmpss", "EVEX.LIG.F3.0F.W0 C2 /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat32, flagOpMask | flagSAE}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vcmpsd_kr_k1_xmm_xmmm64_imm8_sae, "vcmpsd", "EVEX.LIG.F2.0F.W1 C2 /r ib", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat64, flagOpMask | flagSAE}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastd_xmm_k1z_xmmm32, "vpbroadcastd", "EVEX.128.66.0F38.W0 58 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeInt32, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastd_xmm_k1z_r32, "vpbroadcastd", "EVEX.128.66.0F38.W0 7C /r", kinds{Op_xmm_reg, Op_r32_rm}, MemorySizeUnknown, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleNone},
	{form{EVEX_Vbroadcastss_xmm_k1z_xmmm32, "vbroadcastss", "EVEX.128.66.0F38.W0 18 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastd_ymm_k1z_xmmm32, "vpbroadcastd", "EVEX.256.66.0F38.W0 58 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizeInt32, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastd_ymm_k1z_r32, "vpbroadcastd", "EVEX.256.66.0F38.W0 7C /r", kinds{Op_ymm_reg, Op_r32_rm}, MemorySizeUnknown, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleNone},
	{form{EVEX_Vbroadcastss_ymm_k1z_xmmm32, "vbroadcastss", "EVEX.256.66.0F38.W0 18 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastd_zmm_k1z_xmmm32, "vpbroadcastd", "EVEX.512.66.0F38.W0 58 /r", kinds{Op_zmm_reg, Op_xmm_or_mem}, MemorySizeInt32, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastd_zmm_k1z_r32, "vpbroadcastd", "EVEX.512.66.0F38.W0 7C /r", kinds{Op_zmm_reg, Op_r32_rm}, MemorySizeUnknown, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleNone},
	{form{EVEX_Vbroadcastss_zmm_k1z_xmmm32, "vbroadcastss", "EVEX.512.66.0F38.W0 18 /r", kinds{Op_zmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpgatherdd_xmm_k1_vm32x, "vpgatherdd", "EVEX.128.66.0F38.W0 90 /r /vsib", kinds{Op_xmm_reg, Op_mem_vsib32x}, MemorySizeInt32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vgatherdps_xmm_k1_vm32x, "vgatherdps", "EVEX.128.66.0F38.W0 92 /r /vsib", kinds{Op_xmm_reg, Op_mem_vsib32x}, MemorySizeFloat32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpscatterdd_vm32x_k1_xmm, "vpscatterdd", "EVEX.128.66.0F38.W0 A0 /r /vsib", kinds{Op_mem_vsib32x, Op_xmm_reg}, MemorySizeInt32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpgatherdd_ymm_k1_vm32y, "vpgatherdd", "EVEX.256.66.0F38.W0 90 /r /vsib", kinds{Op_ymm_reg, Op_mem_vsib32y}, MemorySizeInt32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vgatherdps_ymm_k1_vm32y, "vgatherdps", "EVEX.256.66.0F38.W0 92 /r /vsib", kinds{Op_ymm_reg, Op_mem_vsib32y}, MemorySizeFloat32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpscatterdd_vm32y_k1_ymm, "vpscatterdd", "EVEX.256.66.0F38.W0 A0 /r /vsib", kinds{Op_mem_vsib32y, Op_ymm_reg}, MemorySizeInt32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpgatherdd_zmm_k1_vm32z, "vpgatherdd", "EVEX.512.66.0F38.W0 90 /r /vsib", kinds{Op_zmm_reg, Op_mem_vsib32z}, MemorySizeInt32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vgatherdps_zmm_k1_vm32z, "vgatherdps", "EVEX.512.66.0F38.W0 92 /r /vsib", kinds{Op_zmm_reg, Op_mem_vsib32z}, MemorySizeFloat32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpscatterdd_vm32z_k1_zmm, "vpscatterdd", "EVEX.512.66.0F38.W0 A0 /r /vsib", kinds{Op_mem_vsib32z, Op_zmm_reg}, MemorySizeInt32, flagOpMask | flagRequireOpMask}, MemorySizeUnknown, Tuple1Scalar},

	// Further AVX-512 forms.
	{form{EVEX_Vpminsd_xmm_k1z_xmm_xmmm128b32, "vpminsd", "EVEX.128.66.0F38.W0 39 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpminsd_ymm_k1z_ymm_ymmm256b32, "vpminsd", "EVEX.256.66.0F38.W0 39 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpminsd_zmm_k1z_zmm_zmmm512b32, "vpminsd", "EVEX.512.66.0F38.W0 39 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpminsq_xmm_k1z_xmm_xmmm128b64, "vpminsq", "EVEX.128.66.0F38.W1 39 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpminsq_ymm_k1z_ymm_ymmm256b64, "vpminsq", "EVEX.256.66.0F38.W1 39 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpminsq_zmm_k1z_zmm_zmmm512b64, "vpminsq", "EVEX.512.66.0F38.W1 39 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpmaxsd_xmm_k1z_xmm_xmmm128b32, "vpmaxsd", "EVEX.128.66.0F38.W0 3D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpmaxsd_ymm_k1z_ymm_ymmm256b32, "vpmaxsd", "EVEX.256.66.0F38.W0 3D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpmaxsd_zmm_k1z_zmm_zmmm512b32, "vpmaxsd", "EVEX.512.66.0F38.W0 3D /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpmaxsq_xmm_k1z_xmm_xmmm128b64, "vpmaxsq", "EVEX.128.66.0F38.W1 3D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpmaxsq_ymm_k1z_ymm_ymmm256b64, "vpmaxsq", "EVEX.256.66.0F38.W1 3D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpmaxsq_zmm_k1z_zmm_zmmm512b64, "vpmaxsq", "EVEX.512.66.0F38.W1 3D /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpminud_xmm_k1z_xmm_xmmm128b32, "vpminud", "EVEX.128.66.0F38.W0 3B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_UInt32, TupleFull},
	{form{EVEX_Vpminud_ymm_k1z_ymm_ymmm256b32, "vpminud", "EVEX.256.66.0F38.W0 3B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_UInt32, TupleFull},
	{form{EVEX_Vpminud_zmm_k1z_zmm_zmmm512b32, "vpminud", "EVEX.512.66.0F38.W0 3B /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_UInt32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_UInt32, TupleFull},
	{form{EVEX_Vpminuq_xmm_k1z_xmm_xmmm128b64, "vpminuq", "EVEX.128.66.0F38.W1 3B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_UInt64, TupleFull},
	{form{EVEX_Vpminuq_ymm_k1z_ymm_ymmm256b64, "vpminuq", "EVEX.256.66.0F38.W1 3B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_UInt64, TupleFull},
	{form{EVEX_Vpminuq_zmm_k1z_zmm_zmmm512b64, "vpminuq", "EVEX.512.66.0F38.W1 3B /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_UInt64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_UInt64, TupleFull},
	{form{EVEX_Vpmaxud_xmm_k1z_xmm_xmmm128b32, "vpmaxud", "EVEX.128.66.0F38.W0 3F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_UInt32, TupleFull},
	{form{EVEX_Vpmaxud_ymm_k1z_ymm_ymmm256b32, "vpmaxud", "EVEX.256.66.0F38.W0 3F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_UInt32, TupleFull},
	{form{EVEX_Vpmaxud_zmm_k1z_zmm_zmmm512b32, "vpmaxud", "EVEX.512.66.0F38.W0 3F /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_UInt32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_UInt32, TupleFull},
	{form{EVEX_Vpmaxuq_xmm_k1z_xmm_xmmm128b64, "vpmaxuq", "EVEX.128.66.0F38.W1 3F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_UInt64, TupleFull},
	{form{EVEX_Vpmaxuq_ymm_k1z_ymm_ymmm256b64, "vpmaxuq", "EVEX.256.66.0F38.W1 3F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_UInt64, TupleFull},
	{form{EVEX_Vpmaxuq_zmm_k1z_zmm_zmmm512b64, "vpmaxuq", "EVEX.512.66.0F38.W1 3F /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_UInt64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_UInt64, TupleFull},
	{form{EVEX_Vpandnd_xmm_k1z_xmm_xmmm128b32, "vpandnd", "EVEX.128.66.0F.W0 DF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpandnd_ymm_k1z_ymm_ymmm256b32, "vpandnd", "EVEX.256.66.0F.W0 DF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpandnd_zmm_k1z_zmm_zmmm512b32, "vpandnd", "EVEX.512.66.0F.W0 DF /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpandnq_xmm_k1z_xmm_xmmm128b64, "vpandnq", "EVEX.128.66.0F.W1 DF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpandnq_ymm_k1z_ymm_ymmm256b64, "vpandnq", "EVEX.256.66.0F.W1 DF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpandnq_zmm_k1z_zmm_zmmm512b64, "vpandnq", "EVEX.512.66.0F.W1 DF /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpsubq_xmm_k1z_xmm_xmmm128b64, "vpsubq", "EVEX.128.66.0F.W1 FB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpsubq_ymm_k1z_ymm_ymmm256b64, "vpsubq", "EVEX.256.66.0F.W1 FB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpsubq_zmm_k1z_zmm_zmmm512b64, "vpsubq", "EVEX.512.66.0F.W1 FB /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpmullq_xmm_k1z_xmm_xmmm128b64, "vpmullq", "EVEX.128.66.0F38.W1 40 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpmullq_ymm_k1z_ymm_ymmm256b64, "vpmullq", "EVEX.256.66.0F38.W1 40 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpmullq_zmm_k1z_zmm_zmmm512b64, "vpmullq", "EVEX.512.66.0F38.W1 40 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpmuldq_xmm_k1z_xmm_xmmm128b64, "vpmuldq", "EVEX.128.66.0F38.W1 28 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpmuldq_ymm_k1z_ymm_ymmm256b64, "vpmuldq", "EVEX.256.66.0F38.W1 28 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpmuldq_zmm_k1z_zmm_zmmm512b64, "vpmuldq", "EVEX.512.66.0F38.W1 28 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpackusdw_xmm_k1z_xmm_xmmm128b32, "vpackusdw", "EVEX.128.66.0F38.W0 2B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpackusdw_ymm_k1z_ymm_ymmm256b32, "vpackusdw", "EVEX.256.66.0F38.W0 2B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpackusdw_zmm_k1z_zmm_zmmm512b32, "vpackusdw", "EVEX.512.66.0F38.W0 2B /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpminsb_xmm_k1z_xmm_xmmm128, "vpminsb", "EVEX.128.66.0F38.WIG 38 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpminsb_ymm_k1z_ymm_ymmm256, "vpminsb", "EVEX.256.66.0F38.WIG 38 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpminsb_zmm_k1z_zmm_zmmm512, "vpminsb", "EVEX.512.66.0F38.WIG 38 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmaxsb_xmm_k1z_xmm_xmmm128, "vpmaxsb", "EVEX.128.66.0F38.WIG 3C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmaxsb_ymm_k1z_ymm_ymmm256, "vpmaxsb", "EVEX.256.66.0F38.WIG 3C /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmaxsb_zmm_k1z_zmm_zmmm512, "vpmaxsb", "EVEX.512.66.0F38.WIG 3C /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpminuw_xmm_k1z_xmm_xmmm128, "vpminuw", "EVEX.128.66.0F38.WIG 3A /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpminuw_ymm_k1z_ymm_ymmm256, "vpminuw", "EVEX.256.66.0F38.WIG 3A /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpminuw_zmm_k1z_zmm_zmmm512, "vpminuw", "EVEX.512.66.0F38.WIG 3A /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_UInt16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmaxuw_xmm_k1z_xmm_xmmm128, "vpmaxuw", "EVEX.128.66.0F38.WIG 3E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmaxuw_ymm_k1z_ymm_ymmm256, "vpmaxuw", "EVEX.256.66.0F38.WIG 3E /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmaxuw_zmm_k1z_zmm_zmmm512, "vpmaxuw", "EVEX.512.66.0F38.WIG 3E /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_UInt16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmulhrsw_xmm_k1z_xmm_xmmm128, "vpmulhrsw", "EVEX.128.66.0F38.WIG 0B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmulhrsw_ymm_k1z_ymm_ymmm256, "vpmulhrsw", "EVEX.256.66.0F38.WIG 0B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpmulhrsw_zmm_k1z_zmm_zmmm512, "vpmulhrsw", "EVEX.512.66.0F38.WIG 0B /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpshufb_xmm_k1z_xmm_xmmm128, "vpshufb", "EVEX.128.66.0F38.WIG 00 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpshufb_ymm_k1z_ymm_ymmm256, "vpshufb", "EVEX.256.66.0F38.WIG 00 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpshufb_zmm_k1z_zmm_zmmm512, "vpshufb", "EVEX.512.66.0F38.WIG 00 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpaddw_xmm_k1z_xmm_xmmm128, "vpaddw", "EVEX.128.66.0F.WIG FD /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpaddw_ymm_k1z_ymm_ymmm256, "vpaddw", "EVEX.256.66.0F.WIG FD /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpaddw_zmm_k1z_zmm_zmmm512, "vpaddw", "EVEX.512.66.0F.WIG FD /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpsubb_xmm_k1z_xmm_xmmm128, "vpsubb", "EVEX.128.66.0F.WIG F8 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpsubb_ymm_k1z_ymm_ymmm256, "vpsubb", "EVEX.256.66.0F.WIG F8 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpsubb_zmm_k1z_zmm_zmmm512, "vpsubb", "EVEX.512.66.0F.WIG F8 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpsubw_xmm_k1z_xmm_xmmm128, "vpsubw", "EVEX.128.66.0F.WIG F9 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpsubw_ymm_k1z_ymm_ymmm256, "vpsubw", "EVEX.256.66.0F.WIG F9 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpsubw_zmm_k1z_zmm_zmmm512, "vpsubw", "EVEX.512.66.0F.WIG F9 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpermd_ymm_k1z_ymm_ymmm256b32, "vpermd", "EVEX.256.66.0F38.W0 36 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpermd_zmm_k1z_zmm_zmmm512b32, "vpermd", "EVEX.512.66.0F38.W0 36 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vpermq_ymm_k1z_ymm_ymmm256b64, "vpermq", "EVEX.256.66.0F38.W1 36 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpermq_zmm_k1z_zmm_zmmm512b64, "vpermq", "EVEX.512.66.0F38.W1 36 /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vaesenc_xmm_xmm_xmmm128, "vaesenc", "EVEX.128.66.0F38.WIG DC /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesenc_ymm_ymm_ymmm256, "vaesenc", "EVEX.256.66.0F38.WIG DC /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesenc_zmm_zmm_zmmm512, "vaesenc", "EVEX.512.66.0F38.WIG DC /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizeUInt512, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesenclast_xmm_xmm_xmmm128, "vaesenclast", "EVEX.128.66.0F38.WIG DD /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesenclast_ymm_ymm_ymmm256, "vaesenclast", "EVEX.256.66.0F38.WIG DD /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesenclast_zmm_zmm_zmmm512, "vaesenclast", "EVEX.512.66.0F38.WIG DD /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizeUInt512, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesdec_xmm_xmm_xmmm128, "vaesdec", "EVEX.128.66.0F38.WIG DE /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesdec_ymm_ymm_ymmm256, "vaesdec", "EVEX.256.66.0F38.WIG DE /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesdec_zmm_zmm_zmmm512, "vaesdec", "EVEX.512.66.0F38.WIG DE /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizeUInt512, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesdeclast_xmm_xmm_xmmm128, "vaesdeclast", "EVEX.128.66.0F38.WIG DF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesdeclast_ymm_ymm_ymmm256, "vaesdeclast", "EVEX.256.66.0F38.WIG DF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vaesdeclast_zmm_zmm_zmmm512, "vaesdeclast", "EVEX.512.66.0F38.WIG DF /r", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizeUInt512, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8, "vpclmulqdq", "EVEX.128.66.0F3A.WIG 44 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt64, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpclmulqdq_ymm_ymm_ymmm256_imm8, "vpclmulqdq", "EVEX.256.66.0F3A.WIG 44 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_UInt64, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpclmulqdq_zmm_zmm_zmmm512_imm8, "vpclmulqdq", "EVEX.512.66.0F3A.WIG 44 /r ib", kinds{Op_zmm_reg, Op_zmm_vvvv, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_UInt64, 0}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpcmpeqq_kr_k1_xmm_xmmm128b64, "vpcmpeqq", "EVEX.128.66.0F38.W1 29 /r", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpcmpeqq_kr_k1_ymm_ymmm256b64, "vpcmpeqq", "EVEX.256.66.0F38.W1 29 /r", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpcmpeqq_kr_k1_zmm_zmmm512b64, "vpcmpeqq", "EVEX.512.66.0F38.W1 29 /r", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpcmpgtq_kr_k1_xmm_xmmm128b64, "vpcmpgtq", "EVEX.128.66.0F38.W1 37 /r", kinds{Op_k_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast128_Int64, TupleFull},
	{form{EVEX_Vpcmpgtq_kr_k1_ymm_ymmm256b64, "vpcmpgtq", "EVEX.256.66.0F38.W1 37 /r", kinds{Op_k_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast256_Int64, TupleFull},
	{form{EVEX_Vpcmpgtq_kr_k1_zmm_zmmm512b64, "vpcmpgtq", "EVEX.512.66.0F38.W1 37 /r", kinds{Op_k_reg, Op_zmm_vvvv, Op_zmm_or_mem}, MemorySizePacked512_Int64, flagOpMask | flagBroadcast}, MemorySizeBroadcast512_Int64, TupleFull},
	{form{EVEX_Vpmovsxbw_xmm_k1z_xmmm64, "vpmovsxbw", "EVEX.128.66.0F38.WIG 20 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovsxbw_ymm_k1z_xmmm128, "vpmovsxbw", "EVEX.256.66.0F38.WIG 20 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovsxbw_zmm_k1z_ymmm256, "vpmovsxbw", "EVEX.512.66.0F38.WIG 20 /r", kinds{Op_zmm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovzxbw_xmm_k1z_xmmm64, "vpmovzxbw", "EVEX.128.66.0F38.WIG 30 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovzxbw_ymm_k1z_xmmm128, "vpmovzxbw", "EVEX.256.66.0F38.WIG 30 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovzxbw_zmm_k1z_ymmm256, "vpmovzxbw", "EVEX.512.66.0F38.WIG 30 /r", kinds{Op_zmm_reg, Op_ymm_or_mem}, MemorySizePacked256_UInt8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovsxdq_xmm_k1z_xmmm64, "vpmovsxdq", "EVEX.128.66.0F38.W0 25 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovsxdq_ymm_k1z_xmmm128, "vpmovsxdq", "EVEX.256.66.0F38.W0 25 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovsxdq_zmm_k1z_ymmm256, "vpmovsxdq", "EVEX.512.66.0F38.W0 25 /r", kinds{Op_zmm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovzxdq_xmm_k1z_xmmm64, "vpmovzxdq", "EVEX.128.66.0F38.W0 35 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovzxdq_ymm_k1z_xmmm128, "vpmovzxdq", "EVEX.256.66.0F38.W0 35 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vpmovzxdq_zmm_k1z_ymmm256, "vpmovzxdq", "EVEX.512.66.0F38.W0 35 /r", kinds{Op_zmm_reg, Op_ymm_or_mem}, MemorySizePacked256_UInt32, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleHalfMem},
	{form{EVEX_Vmovdqa32_xmmm128_k1_xmm, "vmovdqa32", "EVEX.128.66.0F.W0 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Int32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa32_ymmm256_k1_ymm, "vmovdqa32", "EVEX.256.66.0F.W0 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Int32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa64_xmmm128_k1_xmm, "vmovdqa64", "EVEX.128.66.0F.W1 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Int64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqa64_ymmm256_k1_ymm, "vmovdqa64", "EVEX.256.66.0F.W1 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Int64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu32_xmmm128_k1_xmm, "vmovdqu32", "EVEX.128.F3.0F.W0 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Int32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu32_ymmm256_k1_ymm, "vmovdqu32", "EVEX.256.F3.0F.W0 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Int32, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu64_xmmm128_k1_xmm, "vmovdqu64", "EVEX.128.F3.0F.W1 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Int64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu64_ymmm256_k1_ymm, "vmovdqu64", "EVEX.256.F3.0F.W1 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Int64, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu8_xmm_k1z_xmmm128, "vmovdqu8", "EVEX.128.F2.0F.W0 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu8_ymm_k1z_ymmm256, "vmovdqu8", "EVEX.256.F2.0F.W0 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int8, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu8_xmmm128_k1_xmm, "vmovdqu8", "EVEX.128.F2.0F.W0 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Int8, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu8_ymmm256_k1_ymm, "vmovdqu8", "EVEX.256.F2.0F.W0 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Int8, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu8_zmmm512_k1_zmm, "vmovdqu8", "EVEX.512.F2.0F.W0 7F /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Int8, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu16_xmm_k1z_xmmm128, "vmovdqu16", "EVEX.128.F2.0F.W1 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu16_ymm_k1z_ymmm256, "vmovdqu16", "EVEX.256.F2.0F.W1 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int16, flagOpMask | flagZeroing}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu16_xmmm128_k1_xmm, "vmovdqu16", "EVEX.128.F2.0F.W1 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Int16, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu16_ymmm256_k1_ymm, "vmovdqu16", "EVEX.256.F2.0F.W1 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Int16, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vmovdqu16_zmmm512_k1_zmm, "vmovdqu16", "EVEX.512.F2.0F.W1 7F /r", kinds{Op_zmm_or_mem, Op_zmm_reg}, MemorySizePacked512_Int16, flagOpMask}, MemorySizeUnknown, TupleFullMem},
	{form{EVEX_Vpbroadcastq_xmm_k1z_xmmm64, "vpbroadcastq", "EVEX.128.66.0F38.W1 59 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeInt64, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastq_ymm_k1z_xmmm64, "vpbroadcastq", "EVEX.256.66.0F38.W1 59 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizeInt64, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vpbroadcastq_zmm_k1z_xmmm64, "vpbroadcastq", "EVEX.512.66.0F38.W1 59 /r", kinds{Op_zmm_reg, Op_xmm_or_mem}, MemorySizeInt64, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vbroadcastsd_ymm_k1z_xmmm64, "vbroadcastsd", "EVEX.256.66.0F38.W1 19 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vbroadcastsd_zmm_k1z_xmmm64, "vbroadcastsd", "EVEX.512.66.0F38.W1 19 /r", kinds{Op_zmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, flagOpMask | flagZeroing}, MemorySizeUnknown, Tuple1Scalar},
	{form{EVEX_Vcvtdq2ps_xmm_k1z_xmmm128b32, "vcvtdq2ps", "EVEX.128.0F.W0 5B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vcvtdq2ps_ymm_k1z_ymmm256b32, "vcvtdq2ps", "EVEX.256.0F.W0 5B /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vcvtdq2ps_zmm_k1z_zmmm512b32_er, "vcvtdq2ps", "EVEX.512.0F.W0 5B /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Int32, TupleFull},
	{form{EVEX_Vcvtps2dq_xmm_k1z_xmmm128b32, "vcvtps2dq", "EVEX.128.66.0F.W0 5B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vcvtps2dq_ymm_k1z_ymmm256b32, "vcvtps2dq", "EVEX.256.66.0F.W0 5B /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vcvtps2dq_zmm_k1z_zmmm512b32_er, "vcvtps2dq", "EVEX.512.66.0F.W0 5B /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagER}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vcvttps2dq_xmm_k1z_xmmm128b32, "vcvttps2dq", "EVEX.128.F3.0F.W0 5B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Float32, TupleFull},
	{form{EVEX_Vcvttps2dq_ymm_k1z_ymmm256b32, "vcvttps2dq", "EVEX.256.F3.0F.W0 5B /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Float32, TupleFull},
	{form{EVEX_Vcvttps2dq_zmm_k1z_zmmm512b32_sae, "vcvttps2dq", "EVEX.512.F3.0F.W0 5B /r", kinds{Op_zmm_reg, Op_zmm_or_mem}, MemorySizePacked512_Float32, flagOpMask | flagZeroing | flagBroadcast | flagSAE}, MemorySizeBroadcast512_Float32, TupleFull},
	{form{EVEX_Vpshufd_xmm_k1z_xmmm128b32_imm8, "vpshufd", "EVEX.128.66.0F.W0 70 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast128_Int32, TupleFull},
	{form{EVEX_Vpshufd_ymm_k1z_ymmm256b32_imm8, "vpshufd", "EVEX.256.66.0F.W0 70 /r ib", kinds{Op_ymm_reg, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast256_Int32, TupleFull},
	{form{EVEX_Vpshufd_zmm_k1z_zmmm512b32_imm8, "vpshufd", "EVEX.512.66.0F.W0 70 /r ib", kinds{Op_zmm_reg, Op_zmm_or_mem, Op_imm8}, MemorySizePacked512_Int32, flagOpMask | flagZeroing | flagBroadcast}, MemorySizeBroadcast512_Int32, TupleFull},
}
