// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// sseForms describes the MMX, SSE and later instructions with legacy encodings.
var sseForms = [...]form{
	{Movups_xmm_xmmm128, "movups", "NP 0F 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Movupd_xmm_xmmm128, "movupd", "66 0F 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Movss_xmm_xmmm32, "movss", "F3 0F 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Movsd_xmm_xmmm64, "movsd", "F2 0F 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Movups_xmmm128_xmm, "movups", "NP 0F 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float32, 0},
	{Movupd_xmmm128_xmm, "movupd", "66 0F 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float64, 0},
	{Movss_xmmm32_xmm, "movss", "F3 0F 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeFloat32, 0},
	{Movsd_xmmm64_xmm, "movsd", "F2 0F 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeFloat64, 0},
	{Movlps_xmm_m64, "movlps", "NP 0F 12 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizePacked64_Float32, 0},
	{Movhlps_xmm_xmm, "movhlps", "NP 0F 12 /r", kinds{Op_xmm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movlpd_xmm_m64, "movlpd", "66 0F 12 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeFloat64, 0},
	{Movsldup_xmm_xmmm128, "movsldup", "F3 0F 12 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Movddup_xmm_xmmm64, "movddup", "F2 0F 12 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Movlps_m64_xmm, "movlps", "NP 0F 13 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizePacked64_Float32, 0},
	{Movlpd_m64_xmm, "movlpd", "66 0F 13 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizeFloat64, 0},
	{Unpcklps_xmm_xmmm128, "unpcklps", "NP 0F 14 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Unpcklpd_xmm_xmmm128, "unpcklpd", "66 0F 14 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Unpckhps_xmm_xmmm128, "unpckhps", "NP 0F 15 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Unpckhpd_xmm_xmmm128, "unpckhpd", "66 0F 15 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Movhps_xmm_m64, "movhps", "NP 0F 16 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizePacked64_Float32, 0},
	{Movlhps_xmm_xmm, "movlhps", "NP 0F 16 /r", kinds{Op_xmm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movhpd_xmm_m64, "movhpd", "66 0F 16 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeFloat64, 0},
	{Movshdup_xmm_xmmm128, "movshdup", "F3 0F 16 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Movhps_m64_xmm, "movhps", "NP 0F 17 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizePacked64_Float32, 0},
	{Movhpd_m64_xmm, "movhpd", "66 0F 17 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizeFloat64, 0},
	{Movaps_xmm_xmmm128, "movaps", "NP 0F 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Movapd_xmm_xmmm128, "movapd", "66 0F 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Movaps_xmmm128_xmm, "movaps", "NP 0F 29 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float32, 0},
	{Movapd_xmmm128_xmm, "movapd", "66 0F 29 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float64, 0},
	{Cvtpi2ps_xmm_mmm64, "cvtpi2ps", "NP 0F 2A /r", kinds{Op_xmm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Cvtpi2pd_xmm_mmm64, "cvtpi2pd", "66 0F 2A /r", kinds{Op_xmm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Cvtsi2ss_xmm_rm32, "cvtsi2ss", "F3 0F 2A /r", kinds{Op_xmm_reg, Op_r32_or_mem}, MemorySizeInt32, 0},
	{Cvtsi2ss_xmm_rm64, "cvtsi2ss", "F3 REX.W 0F 2A /r", kinds{Op_xmm_reg, Op_r64_or_mem}, MemorySizeInt64, 0},
	{Cvtsi2sd_xmm_rm32, "cvtsi2sd", "F2 0F 2A /r", kinds{Op_xmm_reg, Op_r32_or_mem}, MemorySizeInt32, 0},
	{Cvtsi2sd_xmm_rm64, "cvtsi2sd", "F2 REX.W 0F 2A /r", kinds{Op_xmm_reg, Op_r64_or_mem}, MemorySizeInt64, 0},
	{Movntps_m128_xmm, "movntps", "NP 0F 2B /r", kinds{Op_mem, Op_xmm_reg}, MemorySizePacked128_Float32, 0},
	{Movntpd_m128_xmm, "movntpd", "66 0F 2B /r", kinds{Op_mem, Op_xmm_reg}, MemorySizePacked128_Float64, 0},
	{Cvttps2pi_mm_xmmm64, "cvttps2pi", "NP 0F 2C /r", kinds{Op_mm_reg, Op_xmm_or_mem}, MemorySizePacked64_Float32, 0},
	{Cvttpd2pi_mm_xmmm128, "cvttpd2pi", "66 0F 2C /r", kinds{Op_mm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Cvttss2si_r32_xmmm32, "cvttss2si", "F3 0F 2C /r", kinds{Op_r32_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Cvttss2si_r64_xmmm32, "cvttss2si", "F3 REX.W 0F 2C /r", kinds{Op_r64_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Cvttsd2si_r32_xmmm64, "cvttsd2si", "F2 0F 2C /r", kinds{Op_r32_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Cvttsd2si_r64_xmmm64, "cvttsd2si", "F2 REX.W 0F 2C /r", kinds{Op_r64_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Cvtps2pi_mm_xmmm64, "cvtps2pi", "NP 0F 2D /r", kinds{Op_mm_reg, Op_xmm_or_mem}, MemorySizePacked64_Float32, 0},
	{Cvtpd2pi_mm_xmmm128, "cvtpd2pi", "66 0F 2D /r", kinds{Op_mm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Cvtss2si_r32_xmmm32, "cvtss2si", "F3 0F 2D /r", kinds{Op_r32_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Cvtss2si_r64_xmmm32, "cvtss2si", "F3 REX.W 0F 2D /r", kinds{Op_r64_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Cvtsd2si_r32_xmmm64, "cvtsd2si", "F2 0F 2D /r", kinds{Op_r32_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Cvtsd2si_r64_xmmm64, "cvtsd2si", "F2 REX.W 0F 2D /r", kinds{Op_r64_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Ucomiss_xmm_xmmm32, "ucomiss", "NP 0F 2E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Ucomisd_xmm_xmmm64, "ucomisd", "66 0F 2E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Comiss_xmm_xmmm32, "comiss", "NP 0F 2F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Comisd_xmm_xmmm64, "comisd", "66 0F 2F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Movmskps_r32_xmm, "movmskps", "NP 0F 50 /r", kinds{Op_r32_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movmskps_r64_xmm, "movmskps", "NP REX.W 0F 50 /r", kinds{Op_r64_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movmskpd_r32_xmm, "movmskpd", "66 0F 50 /r", kinds{Op_r32_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movmskpd_r64_xmm, "movmskpd", "66 REX.W 0F 50 /r", kinds{Op_r64_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Sqrtps_xmm_xmmm128, "sqrtps", "NP 0F 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Sqrtpd_xmm_xmmm128, "sqrtpd", "66 0F 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Sqrtss_xmm_xmmm32, "sqrtss", "F3 0F 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Sqrtsd_xmm_xmmm64, "sqrtsd", "F2 0F 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Rsqrtps_xmm_xmmm128, "rsqrtps", "NP 0F 52 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Rsqrtss_xmm_xmmm32, "rsqrtss", "F3 0F 52 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Rcpps_xmm_xmmm128, "rcpps", "NP 0F 53 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Rcpss_xmm_xmmm32, "rcpss", "F3 0F 53 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Andps_xmm_xmmm128, "andps", "NP 0F 54 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Andpd_xmm_xmmm128, "andpd", "66 0F 54 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Andnps_xmm_xmmm128, "andnps", "NP 0F 55 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Andnpd_xmm_xmmm128, "andnpd", "66 0F 55 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Orps_xmm_xmmm128, "orps", "NP 0F 56 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Orpd_xmm_xmmm128, "orpd", "66 0F 56 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Xorps_xmm_xmmm128, "xorps", "NP 0F 57 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Xorpd_xmm_xmmm128, "xorpd", "66 0F 57 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Addps_xmm_xmmm128, "addps", "NP 0F 58 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Addpd_xmm_xmmm128, "addpd", "66 0F 58 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Addss_xmm_xmmm32, "addss", "F3 0F 58 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Addsd_xmm_xmmm64, "addsd", "F2 0F 58 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Mulps_xmm_xmmm128, "mulps", "NP 0F 59 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Mulpd_xmm_xmmm128, "mulpd", "66 0F 59 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Mulss_xmm_xmmm32, "mulss", "F3 0F 59 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Mulsd_xmm_xmmm64, "mulsd", "F2 0F 59 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Cvtps2pd_xmm_xmmm64, "cvtps2pd", "NP 0F 5A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Float32, 0},
	{Cvtpd2ps_xmm_xmmm128, "cvtpd2ps", "66 0F 5A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Cvtss2sd_xmm_xmmm32, "cvtss2sd", "F3 0F 5A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Cvtsd2ss_xmm_xmmm64, "cvtsd2ss", "F2 0F 5A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Cvtdq2ps_xmm_xmmm128, "cvtdq2ps", "NP 0F 5B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Cvtps2dq_xmm_xmmm128, "cvtps2dq", "66 0F 5B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Cvttps2dq_xmm_xmmm128, "cvttps2dq", "F3 0F 5B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Subps_xmm_xmmm128, "subps", "NP 0F 5C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Subpd_xmm_xmmm128, "subpd", "66 0F 5C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Subss_xmm_xmmm32, "subss", "F3 0F 5C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Subsd_xmm_xmmm64, "subsd", "F2 0F 5C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Minps_xmm_xmmm128, "minps", "NP 0F 5D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Minpd_xmm_xmmm128, "minpd", "66 0F 5D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Minss_xmm_xmmm32, "minss", "F3 0F 5D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Minsd_xmm_xmmm64, "minsd", "F2 0F 5D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Divps_xmm_xmmm128, "divps", "NP 0F 5E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Divpd_xmm_xmmm128, "divpd", "66 0F 5E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Divss_xmm_xmmm32, "divss", "F3 0F 5E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Divsd_xmm_xmmm64, "divsd", "F2 0F 5E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Maxps_xmm_xmmm128, "maxps", "NP 0F 5F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Maxpd_xmm_xmmm128, "maxpd", "66 0F 5F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Maxss_xmm_xmmm32, "maxss", "F3 0F 5F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{Maxsd_xmm_xmmm64, "maxsd", "F2 0F 5F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{Cmpps_xmm_xmmm128_imm8, "cmpps", "NP 0F C2 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{Cmppd_xmm_xmmm128_imm8, "cmppd", "66 0F C2 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, 0},
	{Cmpss_xmm_xmmm32_imm8, "cmpss", "F3 0F C2 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat32, 0},
	{Cmpsd_xmm_xmmm64_imm8, "cmpsd", "F2 0F C2 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat64, 0},
	{Shufps_xmm_xmmm128_imm8, "shufps", "NP 0F C6 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{Shufpd_xmm_xmmm128_imm8, "shufpd", "66 0F C6 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, 0},
	{Haddpd_xmm_xmmm128, "haddpd", "66 0F 7C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Haddps_xmm_xmmm128, "haddps", "F2 0F 7C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Hsubpd_xmm_xmmm128, "hsubpd", "66 0F 7D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Hsubps_xmm_xmmm128, "hsubps", "F2 0F 7D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Addsubpd_xmm_xmmm128, "addsubpd", "66 0F D0 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Addsubps_xmm_xmmm128, "addsubps", "F2 0F D0 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Cvttpd2dq_xmm_xmmm128, "cvttpd2dq", "66 0F E6 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Cvtdq2pd_xmm_xmmm64, "cvtdq2pd", "F3 0F E6 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int32, 0},
	{Cvtpd2dq_xmm_xmmm128, "cvtpd2dq", "F2 0F E6 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Lddqu_xmm_m128, "lddqu", "F2 0F F0 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeUInt128, 0},
	{Punpcklbw_mm_mmm64, "punpcklbw", "NP 0F 60 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt32, 0},
	{Punpcklbw_xmm_xmmm128, "punpcklbw", "66 0F 60 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Punpcklwd_mm_mmm64, "punpcklwd", "NP 0F 61 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt32, 0},
	{Punpcklwd_xmm_xmmm128, "punpcklwd", "66 0F 61 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Punpckldq_mm_mmm64, "punpckldq", "NP 0F 62 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt32, 0},
	{Punpckldq_xmm_xmmm128, "punpckldq", "66 0F 62 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Packsswb_mm_mmm64, "packsswb", "NP 0F 63 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Packsswb_xmm_xmmm128, "packsswb", "66 0F 63 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pcmpgtb_mm_mmm64, "pcmpgtb", "NP 0F 64 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Pcmpgtb_xmm_xmmm128, "pcmpgtb", "66 0F 64 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Pcmpgtw_mm_mmm64, "pcmpgtw", "NP 0F 65 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pcmpgtw_xmm_xmmm128, "pcmpgtw", "66 0F 65 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pcmpgtd_mm_mmm64, "pcmpgtd", "NP 0F 66 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Pcmpgtd_xmm_xmmm128, "pcmpgtd", "66 0F 66 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Packuswb_mm_mmm64, "packuswb", "NP 0F 67 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Packuswb_xmm_xmmm128, "packuswb", "66 0F 67 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Punpckhbw_mm_mmm64, "punpckhbw", "NP 0F 68 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Punpckhbw_xmm_xmmm128, "punpckhbw", "66 0F 68 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Punpckhwd_mm_mmm64, "punpckhwd", "NP 0F 69 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Punpckhwd_xmm_xmmm128, "punpckhwd", "66 0F 69 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Punpckhdq_mm_mmm64, "punpckhdq", "NP 0F 6A /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Punpckhdq_xmm_xmmm128, "punpckhdq", "66 0F 6A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Packssdw_mm_mmm64, "packssdw", "NP 0F 6B /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Packssdw_xmm_xmmm128, "packssdw", "66 0F 6B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pcmpeqb_mm_mmm64, "pcmpeqb", "NP 0F 74 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Pcmpeqb_xmm_xmmm128, "pcmpeqb", "66 0F 74 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Pcmpeqw_mm_mmm64, "pcmpeqw", "NP 0F 75 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pcmpeqw_xmm_xmmm128, "pcmpeqw", "66 0F 75 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pcmpeqd_mm_mmm64, "pcmpeqd", "NP 0F 76 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Pcmpeqd_xmm_xmmm128, "pcmpeqd", "66 0F 76 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Psrlw_mm_mmm64, "psrlw", "NP 0F D1 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Psrlw_xmm_xmmm128, "psrlw", "66 0F D1 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Psrld_mm_mmm64, "psrld", "NP 0F D2 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt32, 0},
	{Psrld_xmm_xmmm128, "psrld", "66 0F D2 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{Psrlq_mm_mmm64, "psrlq", "NP 0F D3 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Psrlq_xmm_xmmm128, "psrlq", "66 0F D3 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Paddq_mm_mmm64, "paddq", "NP 0F D4 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Paddq_xmm_xmmm128, "paddq", "66 0F D4 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pmullw_mm_mmm64, "pmullw", "NP 0F D5 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pmullw_xmm_xmmm128, "pmullw", "66 0F D5 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psubusb_mm_mmm64, "psubusb", "NP 0F D8 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Psubusb_xmm_xmmm128, "psubusb", "66 0F D8 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Psubusw_mm_mmm64, "psubusw", "NP 0F D9 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Psubusw_xmm_xmmm128, "psubusw", "66 0F D9 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pminub_mm_mmm64, "pminub", "NP 0F DA /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Pminub_xmm_xmmm128, "pminub", "66 0F DA /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Pand_mm_mmm64, "pand", "NP 0F DB /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Pand_xmm_xmmm128, "pand", "66 0F DB /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Paddusb_mm_mmm64, "paddusb", "NP 0F DC /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Paddusb_xmm_xmmm128, "paddusb", "66 0F DC /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Paddusw_mm_mmm64, "paddusw", "NP 0F DD /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Paddusw_xmm_xmmm128, "paddusw", "66 0F DD /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pmaxub_mm_mmm64, "pmaxub", "NP 0F DE /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Pmaxub_xmm_xmmm128, "pmaxub", "66 0F DE /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Pandn_mm_mmm64, "pandn", "NP 0F DF /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Pandn_xmm_xmmm128, "pandn", "66 0F DF /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Pavgb_mm_mmm64, "pavgb", "NP 0F E0 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Pavgb_xmm_xmmm128, "pavgb", "66 0F E0 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Psraw_mm_mmm64, "psraw", "NP 0F E1 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Psraw_xmm_xmmm128, "psraw", "66 0F E1 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psrad_mm_mmm64, "psrad", "NP 0F E2 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Psrad_xmm_xmmm128, "psrad", "66 0F E2 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pavgw_mm_mmm64, "pavgw", "NP 0F E3 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Pavgw_xmm_xmmm128, "pavgw", "66 0F E3 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pmulhuw_mm_mmm64, "pmulhuw", "NP 0F E4 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Pmulhuw_xmm_xmmm128, "pmulhuw", "66 0F E4 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pmulhw_mm_mmm64, "pmulhw", "NP 0F E5 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pmulhw_xmm_xmmm128, "pmulhw", "66 0F E5 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psubsb_mm_mmm64, "psubsb", "NP 0F E8 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Psubsb_xmm_xmmm128, "psubsb", "66 0F E8 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Psubsw_mm_mmm64, "psubsw", "NP 0F E9 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Psubsw_xmm_xmmm128, "psubsw", "66 0F E9 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pminsw_mm_mmm64, "pminsw", "NP 0F EA /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pminsw_xmm_xmmm128, "pminsw", "66 0F EA /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Por_mm_mmm64, "por", "NP 0F EB /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Por_xmm_xmmm128, "por", "66 0F EB /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Paddsb_mm_mmm64, "paddsb", "NP 0F EC /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Paddsb_xmm_xmmm128, "paddsb", "66 0F EC /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Paddsw_mm_mmm64, "paddsw", "NP 0F ED /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Paddsw_xmm_xmmm128, "paddsw", "66 0F ED /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pmaxsw_mm_mmm64, "pmaxsw", "NP 0F EE /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pmaxsw_xmm_xmmm128, "pmaxsw", "66 0F EE /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pxor_mm_mmm64, "pxor", "NP 0F EF /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Pxor_xmm_xmmm128, "pxor", "66 0F EF /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Psllw_mm_mmm64, "psllw", "NP 0F F1 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Psllw_xmm_xmmm128, "psllw", "66 0F F1 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pslld_mm_mmm64, "pslld", "NP 0F F2 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt32, 0},
	{Pslld_xmm_xmmm128, "pslld", "66 0F F2 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{Psllq_mm_mmm64, "psllq", "NP 0F F3 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Psllq_xmm_xmmm128, "psllq", "66 0F F3 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Pmuludq_mm_mmm64, "pmuludq", "NP 0F F4 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt32, 0},
	{Pmuludq_xmm_xmmm128, "pmuludq", "66 0F F4 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{Pmaddwd_mm_mmm64, "pmaddwd", "NP 0F F5 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pmaddwd_xmm_xmmm128, "pmaddwd", "66 0F F5 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psadbw_mm_mmm64, "psadbw", "NP 0F F6 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Psadbw_xmm_xmmm128, "psadbw", "66 0F F6 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Psubb_mm_mmm64, "psubb", "NP 0F F8 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Psubb_xmm_xmmm128, "psubb", "66 0F F8 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Psubw_mm_mmm64, "psubw", "NP 0F F9 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Psubw_xmm_xmmm128, "psubw", "66 0F F9 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psubd_mm_mmm64, "psubd", "NP 0F FA /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Psubd_xmm_xmmm128, "psubd", "66 0F FA /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Psubq_mm_mmm64, "psubq", "NP 0F FB /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Psubq_xmm_xmmm128, "psubq", "66 0F FB /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Paddb_mm_mmm64, "paddb", "NP 0F FC /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Paddb_xmm_xmmm128, "paddb", "66 0F FC /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Paddw_mm_mmm64, "paddw", "NP 0F FD /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Paddw_xmm_xmmm128, "paddw", "66 0F FD /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Paddd_mm_mmm64, "paddd", "NP 0F FE /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Paddd_xmm_xmmm128, "paddd", "66 0F FE /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Punpcklqdq_xmm_xmmm128, "punpcklqdq", "66 0F 6C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt64, 0},
	{Punpckhqdq_xmm_xmmm128, "punpckhqdq", "66 0F 6D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt64, 0},
	{Movd_mm_rm32, "movd", "NP 0F 6E /r", kinds{Op_mm_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Movq_mm_rm64, "movq", "NP REX.W 0F 6E /r", kinds{Op_mm_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Movd_xmm_rm32, "movd", "66 0F 6E /r", kinds{Op_xmm_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Movq_xmm_rm64, "movq", "66 REX.W 0F 6E /r", kinds{Op_xmm_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Movq_mm_mmm64, "movq", "NP 0F 6F /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizeUInt64, 0},
	{Movdqa_xmm_xmmm128, "movdqa", "66 0F 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Movdqu_xmm_xmmm128, "movdqu", "F3 0F 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Pshufw_mm_mmm64_imm8, "pshufw", "NP 0F 70 /r ib", kinds{Op_mm_reg, Op_mm_or_mem, Op_imm8}, MemorySizePacked64_Int16, 0},
	{Pshufd_xmm_xmmm128_imm8, "pshufd", "66 0F 70 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int32, 0},
	{Pshufhw_xmm_xmmm128_imm8, "pshufhw", "F3 0F 70 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int16, 0},
	{Pshuflw_xmm_xmmm128_imm8, "pshuflw", "F2 0F 70 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int16, 0},
	{Psrlw_mm_imm8, "psrlw", "NP 0F 71 /2 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrlw_xmm_imm8, "psrlw", "66 0F 71 /2 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psraw_mm_imm8, "psraw", "NP 0F 71 /4 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psraw_xmm_imm8, "psraw", "66 0F 71 /4 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psllw_mm_imm8, "psllw", "NP 0F 71 /6 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psllw_xmm_imm8, "psllw", "66 0F 71 /6 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrld_mm_imm8, "psrld", "NP 0F 72 /2 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrld_xmm_imm8, "psrld", "66 0F 72 /2 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrad_mm_imm8, "psrad", "NP 0F 72 /4 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrad_xmm_imm8, "psrad", "66 0F 72 /4 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Pslld_mm_imm8, "pslld", "NP 0F 72 /6 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Pslld_xmm_imm8, "pslld", "66 0F 72 /6 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrlq_mm_imm8, "psrlq", "NP 0F 73 /2 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrlq_xmm_imm8, "psrlq", "66 0F 73 /2 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psrldq_xmm_imm8, "psrldq", "66 0F 73 /3 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psllq_mm_imm8, "psllq", "NP 0F 73 /6 ib", kinds{Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Psllq_xmm_imm8, "psllq", "66 0F 73 /6 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Pslldq_xmm_imm8, "pslldq", "66 0F 73 /7 ib", kinds{Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Emms, "emms", "NP 0F 77", kinds{}, MemorySizeUnknown, 0},
	{Vmread_rm32_r32, "vmread", "NP !64 0F 78 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Vmread_rm64_r64, "vmread", "NP only64 0F 78 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, 0},
	{Extrq_xmm_imm8_imm8, "extrq", "66 0F 78 /0 ib ib", kinds{Op_xmm_rm, Op_imm8, Op_imm8}, MemorySizeUnknown, 0},
	{Insertq_xmm_xmm_imm8_imm8, "insertq", "F2 0F 78 /r ib ib", kinds{Op_xmm_reg, Op_xmm_rm, Op_imm8, Op_imm8}, MemorySizeUnknown, 0},
	{Vmwrite_r32_rm32, "vmwrite", "NP !64 0F 79 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Vmwrite_r64_rm64, "vmwrite", "NP only64 0F 79 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Extrq_xmm_xmm, "extrq", "66 0F 79 /r", kinds{Op_xmm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Insertq_xmm_xmm, "insertq", "F2 0F 79 /r", kinds{Op_xmm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movd_rm32_mm, "movd", "NP 0F 7E /r", kinds{Op_r32_or_mem, Op_mm_reg}, MemorySizeUInt32, 0},
	{Movq_rm64_mm, "movq", "NP REX.W 0F 7E /r", kinds{Op_r64_or_mem, Op_mm_reg}, MemorySizeUInt64, 0},
	{Movd_rm32_xmm, "movd", "66 0F 7E /r", kinds{Op_r32_or_mem, Op_xmm_reg}, MemorySizeUInt32, 0},
	{Movq_rm64_xmm, "movq", "66 REX.W 0F 7E /r", kinds{Op_r64_or_mem, Op_xmm_reg}, MemorySizeUInt64, 0},
	{Movq_xmm_xmmm64, "movq", "F3 0F 7E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt64, 0},
	{Movq_mmm64_mm, "movq", "NP 0F 7F /r", kinds{Op_mm_or_mem, Op_mm_reg}, MemorySizeUInt64, 0},
	{Movdqa_xmmm128_xmm, "movdqa", "66 0F 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeUInt128, 0},
	{Movdqu_xmmm128_xmm, "movdqu", "F3 0F 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeUInt128, 0},
	{Pinsrw_mm_r32m16_imm8, "pinsrw", "NP 0F C4 /r ib", kinds{Op_mm_reg, Op_r32_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Pinsrw_xmm_r32m16_imm8, "pinsrw", "66 0F C4 /r ib", kinds{Op_xmm_reg, Op_r32_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Pextrw_r32_mm_imm8, "pextrw", "NP 0F C5 /r ib", kinds{Op_r32_reg, Op_mm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Pextrw_r32_xmm_imm8, "pextrw", "66 0F C5 /r ib", kinds{Op_r32_reg, Op_xmm_rm, Op_imm8}, MemorySizeUnknown, 0},
	{Movq_xmmm64_xmm, "movq", "66 0F D6 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeUInt64, 0},
	{Movq2dq_xmm_mm, "movq2dq", "F3 0F D6 /r", kinds{Op_xmm_reg, Op_mm_rm}, MemorySizeUnknown, 0},
	{Movdq2q_mm_xmm, "movdq2q", "F2 0F D6 /r", kinds{Op_mm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Pmovmskb_r32_mm, "pmovmskb", "NP 0F D7 /r", kinds{Op_r32_reg, Op_mm_rm}, MemorySizeUnknown, 0},
	{Pmovmskb_r32_xmm, "pmovmskb", "66 0F D7 /r", kinds{Op_r32_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{Movntq_m64_mm, "movntq", "NP 0F E7 /r", kinds{Op_mem, Op_mm_reg}, MemorySizeUInt64, 0},
	{Movntdq_m128_xmm, "movntdq", "66 0F E7 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizeUInt128, 0},
	{Maskmovq_rDI_mm_mm, "maskmovq", "NP 0F F7 /r", kinds{Op_seg_rDI, Op_mm_reg, Op_mm_rm}, MemorySizeUInt64, 0},
	{Maskmovdqu_rDI_xmm_xmm, "maskmovdqu", "66 0F F7 /r", kinds{Op_seg_rDI, Op_xmm_reg, Op_xmm_rm}, MemorySizeUInt128, 0},
	{Pshufb_mm_mmm64, "pshufb", "NP 0F 38 00 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Pshufb_xmm_xmmm128, "pshufb", "66 0F 38 00 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{Phaddw_mm_mmm64, "phaddw", "NP 0F 38 01 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Phaddw_xmm_xmmm128, "phaddw", "66 0F 38 01 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Phaddd_mm_mmm64, "phaddd", "NP 0F 38 02 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Phaddd_xmm_xmmm128, "phaddd", "66 0F 38 02 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pmaddubsw_mm_mmm64, "pmaddubsw", "NP 0F 38 04 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Pmaddubsw_xmm_xmmm128, "pmaddubsw", "66 0F 38 04 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Pabsb_mm_mmm64, "pabsb", "NP 0F 38 1C /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Pabsb_xmm_xmmm128, "pabsb", "66 0F 38 1C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Pabsw_mm_mmm64, "pabsw", "NP 0F 38 1D /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pabsw_xmm_xmmm128, "pabsw", "66 0F 38 1D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Pabsd_mm_mmm64, "pabsd", "NP 0F 38 1E /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Pabsd_xmm_xmmm128, "pabsd", "66 0F 38 1E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pblendvb_xmm_xmmm128, "pblendvb", "66 0F 38 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Ptest_xmm_xmmm128, "ptest", "66 0F 38 17 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Pmovzxbw_xmm_xmmm64, "pmovzxbw", "66 0F 38 30 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt8, 0},
	{Pmulld_xmm_xmmm128, "pmulld", "66 0F 38 40 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Movbe_r16_m16, "movbe", "NP o16 0F 38 F0 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeUInt16, 0},
	{Movbe_r32_m32, "movbe", "NP o32 0F 38 F0 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeUInt32, 0},
	{Movbe_r64_m64, "movbe", "NP REX.W 0F 38 F0 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeUInt64, 0},
	{Movbe_m16_r16, "movbe", "NP o16 0F 38 F1 /r", kinds{Op_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Movbe_m32_r32, "movbe", "NP o32 0F 38 F1 /r", kinds{Op_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Movbe_m64_r64, "movbe", "NP REX.W 0F 38 F1 /r", kinds{Op_mem, Op_r64_reg}, MemorySizeUInt64, 0},
	{Crc32_r32_rm8, "crc32", "F2 0F 38 F0 /r", kinds{Op_r32_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Crc32_r64_rm8, "crc32", "F2 REX.W 0F 38 F0 /r", kinds{Op_r64_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Crc32_r32_rm16, "crc32", "o16 F2 0F 38 F1 /r", kinds{Op_r32_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Crc32_r32_rm32, "crc32", "o32 F2 0F 38 F1 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Crc32_r64_rm64, "crc32", "F2 REX.W 0F 38 F1 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Adcx_r32_rm32, "adcx", "66 0F 38 F6 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Adcx_r64_rm64, "adcx", "66 REX.W 0F 38 F6 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Adox_r32_rm32, "adox", "F3 0F 38 F6 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Adox_r64_rm64, "adox", "F3 REX.W 0F 38 F6 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Palignr_mm_mmm64_imm8, "palignr", "NP 0F 3A 0F /r ib", kinds{Op_mm_reg, Op_mm_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Palignr_xmm_xmmm128_imm8, "palignr", "66 0F 3A 0F /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},
	{Roundps_xmm_xmmm128_imm8, "roundps", "66 0F 3A 08 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{Roundsd_xmm_xmmm64_imm8, "roundsd", "66 0F 3A 0B /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat64, 0},
	{Blendps_xmm_xmmm128_imm8, "blendps", "66 0F 3A 0C /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{Pextrd_rm32_xmm_imm8, "pextrd", "66 0F 3A 16 /r ib", kinds{Op_r32_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeUInt32, 0},
	{Pextrq_rm64_xmm_imm8, "pextrq", "66 REX.W 0F 3A 16 /r ib", kinds{Op_r64_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeUInt64, 0},
	{Pinsrb_xmm_r32m8_imm8, "pinsrb", "66 0F 3A 20 /r ib", kinds{Op_xmm_reg, Op_r32_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Pinsrd_xmm_rm32_imm8, "pinsrd", "66 0F 3A 22 /r ib", kinds{Op_xmm_reg, Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Pinsrq_xmm_rm64_imm8, "pinsrq", "66 REX.W 0F 3A 22 /r ib", kinds{Op_xmm_reg, Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Pclmulqdq_xmm_xmmm128_imm8, "pclmulqdq", "66 0F 3A 44 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt64, 0},
	{Pcmpistri_xmm_xmmm128_imm8, "pcmpistri", "66 0F 3A 63 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},

	// SSSE3, SSE4.1, SSE4.2, AES-NI and the VMX invalidation instructions.
	{Phaddsw_mm_mmm64, "phaddsw", "NP 0F 38 03 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Phaddsw_xmm_xmmm128, "phaddsw", "66 0F 38 03 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Phsubw_mm_mmm64, "phsubw", "NP 0F 38 05 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Phsubw_xmm_xmmm128, "phsubw", "66 0F 38 05 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Phsubd_mm_mmm64, "phsubd", "NP 0F 38 06 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Phsubd_xmm_xmmm128, "phsubd", "66 0F 38 06 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Phsubsw_mm_mmm64, "phsubsw", "NP 0F 38 07 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Phsubsw_xmm_xmmm128, "phsubsw", "66 0F 38 07 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psignb_mm_mmm64, "psignb", "NP 0F 38 08 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int8, 0},
	{Psignb_xmm_xmmm128, "psignb", "66 0F 38 08 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Psignw_mm_mmm64, "psignw", "NP 0F 38 09 /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Psignw_xmm_xmmm128, "psignw", "66 0F 38 09 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Psignd_mm_mmm64, "psignd", "NP 0F 38 0A /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int32, 0},
	{Psignd_xmm_xmmm128, "psignd", "66 0F 38 0A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pmulhrsw_mm_mmm64, "pmulhrsw", "NP 0F 38 0B /r", kinds{Op_mm_reg, Op_mm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pmulhrsw_xmm_xmmm128, "pmulhrsw", "66 0F 38 0B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{Blendvps_xmm_xmmm128, "blendvps", "66 0F 38 14 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{Blendvpd_xmm_xmmm128, "blendvpd", "66 0F 38 15 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{Pmovsxbw_xmm_xmmm64, "pmovsxbw", "66 0F 38 20 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int8, 0},
	{Pmovsxbd_xmm_xmmm32, "pmovsxbd", "66 0F 38 21 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_Int8, 0},
	{Pmovsxbq_xmm_xmmm16, "pmovsxbq", "66 0F 38 22 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt16, 0},
	{Pmovsxwd_xmm_xmmm64, "pmovsxwd", "66 0F 38 23 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int16, 0},
	{Pmovsxwq_xmm_xmmm32, "pmovsxwq", "66 0F 38 24 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_Int16, 0},
	{Pmovsxdq_xmm_xmmm64, "pmovsxdq", "66 0F 38 25 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int32, 0},
	{Pmovzxbd_xmm_xmmm32, "pmovzxbd", "66 0F 38 31 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_UInt8, 0},
	{Pmovzxbq_xmm_xmmm16, "pmovzxbq", "66 0F 38 32 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt16, 0},
	{Pmovzxwd_xmm_xmmm64, "pmovzxwd", "66 0F 38 33 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt16, 0},
	{Pmovzxwq_xmm_xmmm32, "pmovzxwq", "66 0F 38 34 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_UInt16, 0},
	{Pmovzxdq_xmm_xmmm64, "pmovzxdq", "66 0F 38 35 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt32, 0},
	{Pmuldq_xmm_xmmm128, "pmuldq", "66 0F 38 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pcmpeqq_xmm_xmmm128, "pcmpeqq", "66 0F 38 29 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int64, 0},
	{Packusdw_xmm_xmmm128, "packusdw", "66 0F 38 2B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pcmpgtq_xmm_xmmm128, "pcmpgtq", "66 0F 38 37 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int64, 0},
	{Pminsb_xmm_xmmm128, "pminsb", "66 0F 38 38 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Pminsd_xmm_xmmm128, "pminsd", "66 0F 38 39 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pminuw_xmm_xmmm128, "pminuw", "66 0F 38 3A /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pminud_xmm_xmmm128, "pminud", "66 0F 38 3B /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{Pmaxsb_xmm_xmmm128, "pmaxsb", "66 0F 38 3C /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{Pmaxsd_xmm_xmmm128, "pmaxsd", "66 0F 38 3D /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{Pmaxuw_xmm_xmmm128, "pmaxuw", "66 0F 38 3E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Pmaxud_xmm_xmmm128, "pmaxud", "66 0F 38 3F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{Phminposuw_xmm_xmmm128, "phminposuw", "66 0F 38 41 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{Aesimc_xmm_xmmm128, "aesimc", "66 0F 38 DB /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Aesenc_xmm_xmmm128, "aesenc", "66 0F 38 DC /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Aesenclast_xmm_xmmm128, "aesenclast", "66 0F 38 DD /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Aesdec_xmm_xmmm128, "aesdec", "66 0F 38 DE /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Aesdeclast_xmm_xmmm128, "aesdeclast", "66 0F 38 DF /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{Movntdqa_xmm_m128, "movntdqa", "66 0F 38 2A /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeUInt128, 0},
	{Invept_r32_m128, "invept", "66 !64 0F 38 80 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeUInt128, 0},
	{Invept_r64_m128, "invept", "66 only64 0F 38 80 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeUInt128, 0},
	{Invvpid_r32_m128, "invvpid", "66 !64 0F 38 81 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeUInt128, 0},
	{Invvpid_r64_m128, "invvpid", "66 only64 0F 38 81 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeUInt128, 0},
	{Invpcid_r32_m128, "invpcid", "66 !64 0F 38 82 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeUInt128, 0},
	{Invpcid_r64_m128, "invpcid", "66 only64 0F 38 82 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeUInt128, 0},
	{Roundpd_xmm_xmmm128_imm8, "roundpd", "66 0F 3A 09 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, 0},
	{Roundss_xmm_xmmm32_imm8, "roundss", "66 0F 3A 0A /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat32, 0},
	{Blendpd_xmm_xmmm128_imm8, "blendpd", "66 0F 3A 0D /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, 0},
	{Pblendw_xmm_xmmm128_imm8, "pblendw", "66 0F 3A 0E /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt16, 0},
	{Pextrb_r32m8_xmm_imm8, "pextrb", "66 0F 3A 14 /r ib", kinds{Op_r32_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeUInt8, 0},
	{Pextrb_r64m8_xmm_imm8, "pextrb", "66 REX.W 0F 3A 14 /r ib", kinds{Op_r64_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeUInt8, 0},
	{Pextrw_r32m16_xmm_imm8, "pextrw", "66 0F 3A 15 /r ib", kinds{Op_r32_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeUInt16, 0},
	{Pextrw_r64m16_xmm_imm8, "pextrw", "66 REX.W 0F 3A 15 /r ib", kinds{Op_r64_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeUInt16, 0},
	{Extractps_rm32_xmm_imm8, "extractps", "66 0F 3A 17 /r ib", kinds{Op_r32_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeFloat32, 0},
	{Extractps_r64m32_xmm_imm8, "extractps", "66 REX.W 0F 3A 17 /r ib", kinds{Op_r64_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeFloat32, 0},
	{Insertps_xmm_xmmm32_imm8, "insertps", "66 0F 3A 21 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat32, 0},
	{Dpps_xmm_xmmm128_imm8, "dpps", "66 0F 3A 40 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{Dppd_xmm_xmmm128_imm8, "dppd", "66 0F 3A 41 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, 0},
	{Mpsadbw_xmm_xmmm128_imm8, "mpsadbw", "66 0F 3A 42 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt8, 0},
	{Pcmpestrm_xmm_xmmm128_imm8, "pcmpestrm", "66 0F 3A 60 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},
	{Pcmpestri_xmm_xmmm128_imm8, "pcmpestri", "66 0F 3A 61 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},
	{Pcmpistrm_xmm_xmmm128_imm8, "pcmpistrm", "66 0F 3A 62 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},
	{Aeskeygenassist_xmm_xmmm128_imm8, "aeskeygenassist", "66 0F 3A DF /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},
}
