// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// vexForms describes the VEX-encoded instructions.
var vexForms = [...]form{
	{VEX_Vaddps_xmm_xmm_xmmm128, "vaddps", "VEX.128.0F.WIG 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vaddps_ymm_ymm_ymmm256, "vaddps", "VEX.256.0F.WIG 58 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vaddpd_xmm_xmm_xmmm128, "vaddpd", "VEX.128.66.0F.WIG 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vaddpd_ymm_ymm_ymmm256, "vaddpd", "VEX.256.66.0F.WIG 58 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vaddss_xmm_xmm_xmmm32, "vaddss", "VEX.LIG.F3.0F.WIG 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vaddsd_xmm_xmm_xmmm64, "vaddsd", "VEX.LIG.F2.0F.WIG 58 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vmulps_xmm_xmm_xmmm128, "vmulps", "VEX.128.0F.WIG 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vmulps_ymm_ymm_ymmm256, "vmulps", "VEX.256.0F.WIG 59 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vmulpd_xmm_xmm_xmmm128, "vmulpd", "VEX.128.66.0F.WIG 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vmulpd_ymm_ymm_ymmm256, "vmulpd", "VEX.256.66.0F.WIG 59 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vmulss_xmm_xmm_xmmm32, "vmulss", "VEX.LIG.F3.0F.WIG 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vmulsd_xmm_xmm_xmmm64, "vmulsd", "VEX.LIG.F2.0F.WIG 59 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vsubps_xmm_xmm_xmmm128, "vsubps", "VEX.128.0F.WIG 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vsubps_ymm_ymm_ymmm256, "vsubps", "VEX.256.0F.WIG 5C /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vsubpd_xmm_xmm_xmmm128, "vsubpd", "VEX.128.66.0F.WIG 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vsubpd_ymm_ymm_ymmm256, "vsubpd", "VEX.256.66.0F.WIG 5C /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vsubss_xmm_xmm_xmmm32, "vsubss", "VEX.LIG.F3.0F.WIG 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vsubsd_xmm_xmm_xmmm64, "vsubsd", "VEX.LIG.F2.0F.WIG 5C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vminps_xmm_xmm_xmmm128, "vminps", "VEX.128.0F.WIG 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vminps_ymm_ymm_ymmm256, "vminps", "VEX.256.0F.WIG 5D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vminpd_xmm_xmm_xmmm128, "vminpd", "VEX.128.66.0F.WIG 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vminpd_ymm_ymm_ymmm256, "vminpd", "VEX.256.66.0F.WIG 5D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vminss_xmm_xmm_xmmm32, "vminss", "VEX.LIG.F3.0F.WIG 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vminsd_xmm_xmm_xmmm64, "vminsd", "VEX.LIG.F2.0F.WIG 5D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vdivps_xmm_xmm_xmmm128, "vdivps", "VEX.128.0F.WIG 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vdivps_ymm_ymm_ymmm256, "vdivps", "VEX.256.0F.WIG 5E /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vdivpd_xmm_xmm_xmmm128, "vdivpd", "VEX.128.66.0F.WIG 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vdivpd_ymm_ymm_ymmm256, "vdivpd", "VEX.256.66.0F.WIG 5E /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vdivss_xmm_xmm_xmmm32, "vdivss", "VEX.LIG.F3.0F.WIG 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vdivsd_xmm_xmm_xmmm64, "vdivsd", "VEX.LIG.F2.0F.WIG 5E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vmaxps_xmm_xmm_xmmm128, "vmaxps", "VEX.128.0F.WIG 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vmaxps_ymm_ymm_ymmm256, "vmaxps", "VEX.256.0F.WIG 5F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vmaxpd_xmm_xmm_xmmm128, "vmaxpd", "VEX.128.66.0F.WIG 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vmaxpd_ymm_ymm_ymmm256, "vmaxpd", "VEX.256.66.0F.WIG 5F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vmaxss_xmm_xmm_xmmm32, "vmaxss", "VEX.LIG.F3.0F.WIG 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vmaxsd_xmm_xmm_xmmm64, "vmaxsd", "VEX.LIG.F2.0F.WIG 5F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vandps_xmm_xmm_xmmm128, "vandps", "VEX.128.0F.WIG 54 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vandps_ymm_ymm_ymmm256, "vandps", "VEX.256.0F.WIG 54 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vandpd_xmm_xmm_xmmm128, "vandpd", "VEX.128.66.0F.WIG 54 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vandpd_ymm_ymm_ymmm256, "vandpd", "VEX.256.66.0F.WIG 54 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vandnps_xmm_xmm_xmmm128, "vandnps", "VEX.128.0F.WIG 55 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vandnps_ymm_ymm_ymmm256, "vandnps", "VEX.256.0F.WIG 55 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vandnpd_xmm_xmm_xmmm128, "vandnpd", "VEX.128.66.0F.WIG 55 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vandnpd_ymm_ymm_ymmm256, "vandnpd", "VEX.256.66.0F.WIG 55 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vorps_xmm_xmm_xmmm128, "vorps", "VEX.128.0F.WIG 56 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vorps_ymm_ymm_ymmm256, "vorps", "VEX.256.0F.WIG 56 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vorpd_xmm_xmm_xmmm128, "vorpd", "VEX.128.66.0F.WIG 56 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vorpd_ymm_ymm_ymmm256, "vorpd", "VEX.256.66.0F.WIG 56 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vxorps_xmm_xmm_xmmm128, "vxorps", "VEX.128.0F.WIG 57 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vxorps_ymm_ymm_ymmm256, "vxorps", "VEX.256.0F.WIG 57 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vxorpd_xmm_xmm_xmmm128, "vxorpd", "VEX.128.66.0F.WIG 57 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vxorpd_ymm_ymm_ymmm256, "vxorpd", "VEX.256.66.0F.WIG 57 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vsqrtps_xmm_xmmm128, "vsqrtps", "VEX.128.0F.WIG 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vsqrtps_ymm_ymmm256, "vsqrtps", "VEX.256.0F.WIG 51 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vsqrtpd_xmm_xmmm128, "vsqrtpd", "VEX.128.66.0F.WIG 51 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vsqrtpd_ymm_ymmm256, "vsqrtpd", "VEX.256.66.0F.WIG 51 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vmovups_xmm_xmmm128, "vmovups", "VEX.128.0F.WIG 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vmovups_ymm_ymmm256, "vmovups", "VEX.256.0F.WIG 10 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vmovups_xmmm128_xmm, "vmovups", "VEX.128.0F.WIG 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float32, 0},
	{VEX_Vmovups_ymmm256_ymm, "vmovups", "VEX.256.0F.WIG 11 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float32, 0},
	{VEX_Vmovupd_xmm_xmmm128, "vmovupd", "VEX.128.66.0F.WIG 10 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vmovupd_ymm_ymmm256, "vmovupd", "VEX.256.66.0F.WIG 10 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vmovupd_xmmm128_xmm, "vmovupd", "VEX.128.66.0F.WIG 11 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float64, 0},
	{VEX_Vmovupd_ymmm256_ymm, "vmovupd", "VEX.256.66.0F.WIG 11 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float64, 0},
	{VEX_Vmovaps_xmm_xmmm128, "vmovaps", "VEX.128.0F.WIG 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vmovaps_ymm_ymmm256, "vmovaps", "VEX.256.0F.WIG 28 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vmovaps_xmmm128_xmm, "vmovaps", "VEX.128.0F.WIG 29 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float32, 0},
	{VEX_Vmovaps_ymmm256_ymm, "vmovaps", "VEX.256.0F.WIG 29 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float32, 0},
	{VEX_Vmovapd_xmm_xmmm128, "vmovapd", "VEX.128.66.0F.WIG 28 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vmovapd_ymm_ymmm256, "vmovapd", "VEX.256.66.0F.WIG 28 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vmovapd_xmmm128_xmm, "vmovapd", "VEX.128.66.0F.WIG 29 /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizePacked128_Float64, 0},
	{VEX_Vmovapd_ymmm256_ymm, "vmovapd", "VEX.256.66.0F.WIG 29 /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizePacked256_Float64, 0},
	{VEX_Vmovdqa_xmm_xmmm128, "vmovdqa", "VEX.128.66.0F.WIG 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vmovdqa_ymm_ymmm256, "vmovdqa", "VEX.256.66.0F.WIG 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vmovdqa_xmmm128_xmm, "vmovdqa", "VEX.128.66.0F.WIG 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeUInt128, 0},
	{VEX_Vmovdqa_ymmm256_ymm, "vmovdqa", "VEX.256.66.0F.WIG 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizeUInt256, 0},
	{VEX_Vmovdqu_xmm_xmmm128, "vmovdqu", "VEX.128.F3.0F.WIG 6F /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vmovdqu_ymm_ymmm256, "vmovdqu", "VEX.256.F3.0F.WIG 6F /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vmovdqu_xmmm128_xmm, "vmovdqu", "VEX.128.F3.0F.WIG 7F /r", kinds{Op_xmm_or_mem, Op_xmm_reg}, MemorySizeUInt128, 0},
	{VEX_Vmovdqu_ymmm256_ymm, "vmovdqu", "VEX.256.F3.0F.WIG 7F /r", kinds{Op_ymm_or_mem, Op_ymm_reg}, MemorySizeUInt256, 0},
	{VEX_Vmovss_xmm_xmm_xmm, "vmovss", "VEX.LIG.F3.0F.WIG 10 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_rm}, MemorySizeUnknown, 0},
	{VEX_Vmovss_xmm_m32, "vmovss", "VEX.LIG.F3.0F.WIG 10 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeFloat32, 0},
	{VEX_Vmovss_xmm_xmm_xmm_0F11, "vmovss", "VEX.LIG.F3.0F.WIG 11 /r", kinds{Op_xmm_rm, Op_xmm_vvvv, Op_xmm_reg}, MemorySizeUnknown, 0},
	{VEX_Vmovss_m32_xmm, "vmovss", "VEX.LIG.F3.0F.WIG 11 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizeFloat32, 0},
	{VEX_Vmovsd_xmm_xmm_xmm, "vmovsd", "VEX.LIG.F2.0F.WIG 10 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_rm}, MemorySizeUnknown, 0},
	{VEX_Vmovsd_xmm_m64, "vmovsd", "VEX.LIG.F2.0F.WIG 10 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeFloat64, 0},
	{VEX_Vmovsd_xmm_xmm_xmm_0F11, "vmovsd", "VEX.LIG.F2.0F.WIG 11 /r", kinds{Op_xmm_rm, Op_xmm_vvvv, Op_xmm_reg}, MemorySizeUnknown, 0},
	{VEX_Vmovsd_m64_xmm, "vmovsd", "VEX.LIG.F2.0F.WIG 11 /r", kinds{Op_mem, Op_xmm_reg}, MemorySizeFloat64, 0},
	{VEX_Vcmpps_xmm_xmm_xmmm128_imm8, "vcmpps", "VEX.128.0F.WIG C2 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{VEX_Vcmpps_ymm_ymm_ymmm256_imm8, "vcmpps", "VEX.256.0F.WIG C2 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Float32, 0},
	{VEX_Vcmppd_xmm_xmm_xmmm128_imm8, "vcmppd", "VEX.128.66.0F.WIG C2 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float64, 0},
	{VEX_Vcmppd_ymm_ymm_ymmm256_imm8, "vcmppd", "VEX.256.66.0F.WIG C2 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Float64, 0},
	{VEX_Vcmpss_xmm_xmm_xmmm32_imm8, "vcmpss", "VEX.LIG.F3.0F.WIG C2 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat32, 0},
	{VEX_Vcmpsd_xmm_xmm_xmmm64_imm8, "vcmpsd", "VEX.LIG.F2.0F.WIG C2 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat64, 0},
	{VEX_Vzeroupper, "vzeroupper", "VEX.128.0F.WIG 77", kinds{}, MemorySizeUnknown, 0},
	{VEX_Vzeroall, "vzeroall", "VEX.256.0F.WIG 77", kinds{}, MemorySizeUnknown, 0},
	{VEX_Vldmxcsr_m32, "vldmxcsr", "VEX.LZ.0F.WIG AE /2", kinds{Op_mem}, MemorySizeUInt32, 0},
	{VEX_Vstmxcsr_m32, "vstmxcsr", "VEX.LZ.0F.WIG AE /3", kinds{Op_mem}, MemorySizeUInt32, 0},
	{VEX_Vpxor_xmm_xmm_xmmm128, "vpxor", "VEX.128.66.0F.WIG EF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vpxor_ymm_ymm_ymmm256, "vpxor", "VEX.256.66.0F.WIG EF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vpand_xmm_xmm_xmmm128, "vpand", "VEX.128.66.0F.WIG DB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vpand_ymm_ymm_ymmm256, "vpand", "VEX.256.66.0F.WIG DB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vpor_xmm_xmm_xmmm128, "vpor", "VEX.128.66.0F.WIG EB /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vpor_ymm_ymm_ymmm256, "vpor", "VEX.256.66.0F.WIG EB /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vpaddb_xmm_xmm_xmmm128, "vpaddb", "VEX.128.66.0F.WIG FC /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{VEX_Vpaddb_ymm_ymm_ymmm256, "vpaddb", "VEX.256.66.0F.WIG FC /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, 0},
	{VEX_Vpaddw_xmm_xmm_xmmm128, "vpaddw", "VEX.128.66.0F.WIG FD /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vpaddw_ymm_ymm_ymmm256, "vpaddw", "VEX.256.66.0F.WIG FD /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, 0},
	{VEX_Vpaddd_xmm_xmm_xmmm128, "vpaddd", "VEX.128.66.0F.WIG FE /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpaddd_ymm_ymm_ymmm256, "vpaddd", "VEX.256.66.0F.WIG FE /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpaddq_xmm_xmm_xmmm128, "vpaddq", "VEX.128.66.0F.WIG D4 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, 0},
	{VEX_Vpaddq_ymm_ymm_ymmm256, "vpaddq", "VEX.256.66.0F.WIG D4 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, 0},
	{VEX_Vpsubd_xmm_xmm_xmmm128, "vpsubd", "VEX.128.66.0F.WIG FA /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpsubd_ymm_ymm_ymmm256, "vpsubd", "VEX.256.66.0F.WIG FA /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpcmpeqb_xmm_xmm_xmmm128, "vpcmpeqb", "VEX.128.66.0F.WIG 74 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{VEX_Vpcmpeqb_ymm_ymm_ymmm256, "vpcmpeqb", "VEX.256.66.0F.WIG 74 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, 0},
	{VEX_Vpcmpeqd_xmm_xmm_xmmm128, "vpcmpeqd", "VEX.128.66.0F.WIG 76 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpcmpeqd_ymm_ymm_ymmm256, "vpcmpeqd", "VEX.256.66.0F.WIG 76 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpmulld_xmm_xmm_xmmm128, "vpmulld", "VEX.128.66.0F38.WIG 40 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpmulld_ymm_ymm_ymmm256, "vpmulld", "VEX.256.66.0F38.WIG 40 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpshufb_xmm_xmm_xmmm128, "vpshufb", "VEX.128.66.0F38.WIG 00 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{VEX_Vpshufb_ymm_ymm_ymmm256, "vpshufb", "VEX.256.66.0F38.WIG 00 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt8, 0},
	{VEX_Vptest_xmm_xmmm128, "vptest", "VEX.128.66.0F38.WIG 17 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vptest_ymm_ymmm256, "vptest", "VEX.256.66.0F38.WIG 17 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vblendvps_xmm_xmm_xmmm128_xmm, "vblendvps", "VEX.128.66.0F3A.W0 4A /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizePacked128_Float32, 0},
	{VEX_Vblendvps_ymm_ymm_ymmm256_ymm, "vblendvps", "VEX.256.66.0F3A.W0 4A /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_ymm_is4}, MemorySizePacked256_Float32, 0},
	{VEX_Vblendvpd_xmm_xmm_xmmm128_xmm, "vblendvpd", "VEX.128.66.0F3A.W0 4B /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizePacked128_Float64, 0},
	{VEX_Vblendvpd_ymm_ymm_ymmm256_ymm, "vblendvpd", "VEX.256.66.0F3A.W0 4B /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_ymm_is4}, MemorySizePacked256_Float64, 0},
	{VEX_Vpblendvb_xmm_xmm_xmmm128_xmm, "vpblendvb", "VEX.128.66.0F3A.W0 4C /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizePacked128_Int8, 0},
	{VEX_Vpblendvb_ymm_ymm_ymmm256_ymm, "vpblendvb", "VEX.256.66.0F3A.W0 4C /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_ymm_is4}, MemorySizePacked256_Int8, 0},
	{VEX_Vbroadcastss_xmm_m32, "vbroadcastss", "VEX.128.66.0F38.W0 18 /r", kinds{Op_xmm_reg, Op_mem}, MemorySizeFloat32, 0},
	{VEX_Vbroadcastss_ymm_m32, "vbroadcastss", "VEX.256.66.0F38.W0 18 /r", kinds{Op_ymm_reg, Op_mem}, MemorySizeFloat32, 0},
	{VEX_Vbroadcastss_xmm_xmm, "vbroadcastss", "VEX.128.66.0F38.W0 18 /r", kinds{Op_xmm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{VEX_Vbroadcastss_ymm_xmm, "vbroadcastss", "VEX.256.66.0F38.W0 18 /r", kinds{Op_ymm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{VEX_Vbroadcastsd_ymm_m64, "vbroadcastsd", "VEX.256.66.0F38.W0 19 /r", kinds{Op_ymm_reg, Op_mem}, MemorySizeFloat64, 0},
	{VEX_Vbroadcastsd_ymm_xmm, "vbroadcastsd", "VEX.256.66.0F38.W0 19 /r", kinds{Op_ymm_reg, Op_xmm_rm}, MemorySizeUnknown, 0},
	{VEX_Vpbroadcastd_xmm_xmmm32, "vpbroadcastd", "VEX.128.66.0F38.W0 58 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeInt32, 0},
	{VEX_Vpbroadcastd_ymm_xmmm32, "vpbroadcastd", "VEX.256.66.0F38.W0 58 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizeInt32, 0},
	{VEX_Vinsertf128_ymm_ymm_xmmm128_imm8, "vinsertf128", "VEX.256.66.0F3A.W0 18 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{VEX_Vextractf128_xmmm128_ymm_imm8, "vextractf128", "VEX.256.66.0F3A.W0 19 /r ib", kinds{Op_xmm_or_mem, Op_ymm_reg, Op_imm8}, MemorySizePacked128_Float32, 0},
	{VEX_Vperm2f128_ymm_ymm_ymmm256_imm8, "vperm2f128", "VEX.256.66.0F3A.W0 06 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Float32, 0},
	{VEX_Vpermq_ymm_ymmm256_imm8, "vpermq", "VEX.256.66.0F3A.W1 00 /r ib", kinds{Op_ymm_reg, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Int64, 0},
	{VEX_Vpermd_ymm_ymm_ymmm256, "vpermd", "VEX.256.66.0F38.W0 36 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpgatherdd_xmm_vm32x_xmm, "vpgatherdd", "VEX.128.66.0F38.W0 90 /r /vsib", kinds{Op_xmm_reg, Op_mem_vsib32x, Op_xmm_vvvv}, MemorySizeInt32, 0},
	{VEX_Vpgatherdd_ymm_vm32y_ymm, "vpgatherdd", "VEX.256.66.0F38.W0 90 /r /vsib", kinds{Op_ymm_reg, Op_mem_vsib32y, Op_ymm_vvvv}, MemorySizeInt32, 0},
	{VEX_Vpgatherqq_xmm_vm64x_xmm, "vpgatherqq", "VEX.128.66.0F38.W1 91 /r /vsib", kinds{Op_xmm_reg, Op_mem_vsib64x, Op_xmm_vvvv}, MemorySizeInt64, 0},
	{VEX_Vpgatherqq_ymm_vm64y_ymm, "vpgatherqq", "VEX.256.66.0F38.W1 91 /r /vsib", kinds{Op_ymm_reg, Op_mem_vsib64y, Op_ymm_vvvv}, MemorySizeInt64, 0},
	{VEX_Vgatherdps_xmm_vm32x_xmm, "vgatherdps", "VEX.128.66.0F38.W0 92 /r /vsib", kinds{Op_xmm_reg, Op_mem_vsib32x, Op_xmm_vvvv}, MemorySizeFloat32, 0},
	{VEX_Vgatherdps_ymm_vm32y_ymm, "vgatherdps", "VEX.256.66.0F38.W0 92 /r /vsib", kinds{Op_ymm_reg, Op_mem_vsib32y, Op_ymm_vvvv}, MemorySizeFloat32, 0},
	{VEX_Vgatherqpd_xmm_vm64x_xmm, "vgatherqpd", "VEX.128.66.0F38.W1 93 /r /vsib", kinds{Op_xmm_reg, Op_mem_vsib64x, Op_xmm_vvvv}, MemorySizeFloat64, 0},
	{VEX_Vgatherqpd_ymm_vm64y_ymm, "vgatherqpd", "VEX.256.66.0F38.W1 93 /r /vsib", kinds{Op_ymm_reg, Op_mem_vsib64y, Op_ymm_vvvv}, MemorySizeFloat64, 0},
	{VEX_Vfmadd231ps_xmm_xmm_xmmm128, "vfmadd231ps", "VEX.128.66.0F38.W0 B8 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vfmadd231ps_ymm_ymm_ymmm256, "vfmadd231ps", "VEX.256.66.0F38.W0 B8 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vfmadd231pd_xmm_xmm_xmmm128, "vfmadd231pd", "VEX.128.66.0F38.W1 B8 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{VEX_Vfmadd231pd_ymm_ymm_ymmm256, "vfmadd231pd", "VEX.256.66.0F38.W1 B8 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{VEX_Vfmadd213ps_xmm_xmm_xmmm128, "vfmadd213ps", "VEX.128.66.0F38.W0 A8 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vfmadd213ps_ymm_ymm_ymmm256, "vfmadd213ps", "VEX.256.66.0F38.W0 A8 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vfmadd132ps_xmm_xmm_xmmm128, "vfmadd132ps", "VEX.128.66.0F38.W0 98 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{VEX_Vfmadd132ps_ymm_ymm_ymmm256, "vfmadd132ps", "VEX.256.66.0F38.W0 98 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{VEX_Vfmadd231ss_xmm_xmm_xmmm32, "vfmadd231ss", "VEX.LIG.66.0F38.W0 B9 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{VEX_Vfmadd231sd_xmm_xmm_xmmm64, "vfmadd231sd", "VEX.LIG.66.0F38.W1 B9 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{VEX_Vmovd_xmm_rm32, "vmovd", "VEX.128.66.0F.W0 6E /r", kinds{Op_xmm_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Vmovq_xmm_rm64, "vmovq", "only64 VEX.128.66.0F.W1 6E /r", kinds{Op_xmm_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Vmovd_rm32_xmm, "vmovd", "VEX.128.66.0F.W0 7E /r", kinds{Op_r32_or_mem, Op_xmm_reg}, MemorySizeUInt32, 0},
	{VEX_Vmovq_rm64_xmm, "vmovq", "only64 VEX.128.66.0F.W1 7E /r", kinds{Op_r64_or_mem, Op_xmm_reg}, MemorySizeUInt64, 0},
	{VEX_Vmovq_xmm_xmmm64, "vmovq", "VEX.128.F3.0F.WIG 7E /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt64, 0},
	{VEX_Vcvtsi2ss_xmm_xmm_rm32, "vcvtsi2ss", "WIG32 VEX.LIG.F3.0F.W0 2A /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_r32_or_mem}, MemorySizeInt32, 0},
	{VEX_Vcvtsi2ss_xmm_xmm_rm64, "vcvtsi2ss", "only64 VEX.LIG.F3.0F.W1 2A /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_r64_or_mem}, MemorySizeInt64, 0},
	{VEX_Kmovw_kr_km16, "kmovw", "VEX.L0.0F.W0 90 /r", kinds{Op_k_reg, Op_k_or_mem}, MemorySizeUInt16, 0},
	{VEX_Kmovw_m16_kr, "kmovw", "VEX.L0.0F.W0 91 /r", kinds{Op_mem, Op_k_reg}, MemorySizeUInt16, 0},
	{VEX_Kmovb_kr_km8, "kmovb", "VEX.L0.66.0F.W0 90 /r", kinds{Op_k_reg, Op_k_or_mem}, MemorySizeUInt8, 0},
	{VEX_Kmovb_m8_kr, "kmovb", "VEX.L0.66.0F.W0 91 /r", kinds{Op_mem, Op_k_reg}, MemorySizeUInt8, 0},
	{VEX_Kmovd_kr_km32, "kmovd", "VEX.L0.66.0F.W1 90 /r", kinds{Op_k_reg, Op_k_or_mem}, MemorySizeUInt32, 0},
	{VEX_Kmovd_m32_kr, "kmovd", "VEX.L0.66.0F.W1 91 /r", kinds{Op_mem, Op_k_reg}, MemorySizeUInt32, 0},
	{VEX_Kmovq_kr_km64, "kmovq", "VEX.L0.0F.W1 90 /r", kinds{Op_k_reg, Op_k_or_mem}, MemorySizeUInt64, 0},
	{VEX_Kmovq_m64_kr, "kmovq", "VEX.L0.0F.W1 91 /r", kinds{Op_mem, Op_k_reg}, MemorySizeUInt64, 0},
	{VEX_Kmovw_kr_r32, "kmovw", "VEX.L0.0F.W0 92 /r", kinds{Op_k_reg, Op_r32_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovb_kr_r32, "kmovb", "VEX.L0.66.0F.W0 92 /r", kinds{Op_k_reg, Op_r32_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovd_kr_r32, "kmovd", "VEX.L0.F2.0F.W0 92 /r", kinds{Op_k_reg, Op_r32_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovq_kr_r64, "kmovq", "only64 VEX.L0.F2.0F.W1 92 /r", kinds{Op_k_reg, Op_r64_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovw_r32_kr, "kmovw", "VEX.L0.0F.W0 93 /r", kinds{Op_r32_reg, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovb_r32_kr, "kmovb", "VEX.L0.66.0F.W0 93 /r", kinds{Op_r32_reg, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovd_r32_kr, "kmovd", "VEX.L0.F2.0F.W0 93 /r", kinds{Op_r32_reg, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kmovq_r64_kr, "kmovq", "only64 VEX.L0.F2.0F.W1 93 /r", kinds{Op_r64_reg, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kandw_kr_kr_kr, "kandw", "VEX.L1.0F.W0 41 /r", kinds{Op_k_reg, Op_k_vvvv, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kandnw_kr_kr_kr, "kandnw", "VEX.L1.0F.W0 42 /r", kinds{Op_k_reg, Op_k_vvvv, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Korw_kr_kr_kr, "korw", "VEX.L1.0F.W0 45 /r", kinds{Op_k_reg, Op_k_vvvv, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kxnorw_kr_kr_kr, "kxnorw", "VEX.L1.0F.W0 46 /r", kinds{Op_k_reg, Op_k_vvvv, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kxorw_kr_kr_kr, "kxorw", "VEX.L1.0F.W0 47 /r", kinds{Op_k_reg, Op_k_vvvv, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Knotw_kr_kr, "knotw", "VEX.L0.0F.W0 44 /r", kinds{Op_k_reg, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Kortestw_kr_kr, "kortestw", "VEX.L0.0F.W0 98 /r", kinds{Op_k_reg, Op_k_rm}, MemorySizeUnknown, 0},
	{VEX_Andn_r32_r32_rm32, "andn", "WIG32 VEX.LZ.0F38.W0 F2 /r", kinds{Op_r32_reg, Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Andn_r64_r64_rm64, "andn", "only64 VEX.LZ.0F38.W1 F2 /r", kinds{Op_r64_reg, Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Bextr_r32_rm32_r32, "bextr", "WIG32 VEX.LZ.0F38.W0 F7 /r", kinds{Op_r32_reg, Op_r32_or_mem, Op_r32_vvvv}, MemorySizeUInt32, 0},
	{VEX_Bextr_r64_rm64_r64, "bextr", "only64 VEX.LZ.0F38.W1 F7 /r", kinds{Op_r64_reg, Op_r64_or_mem, Op_r64_vvvv}, MemorySizeUInt64, 0},
	{VEX_Shlx_r32_rm32_r32, "shlx", "WIG32 VEX.LZ.66.0F38.W0 F7 /r", kinds{Op_r32_reg, Op_r32_or_mem, Op_r32_vvvv}, MemorySizeUInt32, 0},
	{VEX_Shlx_r64_rm64_r64, "shlx", "only64 VEX.LZ.66.0F38.W1 F7 /r", kinds{Op_r64_reg, Op_r64_or_mem, Op_r64_vvvv}, MemorySizeUInt64, 0},
	{VEX_Sarx_r32_rm32_r32, "sarx", "WIG32 VEX.LZ.F3.0F38.W0 F7 /r", kinds{Op_r32_reg, Op_r32_or_mem, Op_r32_vvvv}, MemorySizeUInt32, 0},
	{VEX_Sarx_r64_rm64_r64, "sarx", "only64 VEX.LZ.F3.0F38.W1 F7 /r", kinds{Op_r64_reg, Op_r64_or_mem, Op_r64_vvvv}, MemorySizeUInt64, 0},
	{VEX_Shrx_r32_rm32_r32, "shrx", "WIG32 VEX.LZ.F2.0F38.W0 F7 /r", kinds{Op_r32_reg, Op_r32_or_mem, Op_r32_vvvv}, MemorySizeUInt32, 0},
	{VEX_Shrx_r64_rm64_r64, "shrx", "only64 VEX.LZ.F2.0F38.W1 F7 /r", kinds{Op_r64_reg, Op_r64_or_mem, Op_r64_vvvv}, MemorySizeUInt64, 0},
	{VEX_Blsr_r32_rm32, "blsr", "WIG32 VEX.LZ.0F38.W0 F3 /1", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Blsr_r64_rm64, "blsr", "only64 VEX.LZ.0F38.W1 F3 /1", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Blsmsk_r32_rm32, "blsmsk", "WIG32 VEX.LZ.0F38.W0 F3 /2", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Blsmsk_r64_rm64, "blsmsk", "only64 VEX.LZ.0F38.W1 F3 /2", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Blsi_r32_rm32, "blsi", "WIG32 VEX.LZ.0F38.W0 F3 /3", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Blsi_r64_rm64, "blsi", "only64 VEX.LZ.0F38.W1 F3 /3", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Bzhi_r32_rm32_r32, "bzhi", "WIG32 VEX.LZ.0F38.W0 F5 /r", kinds{Op_r32_reg, Op_r32_or_mem, Op_r32_vvvv}, MemorySizeUInt32, 0},
	{VEX_Bzhi_r64_rm64_r64, "bzhi", "only64 VEX.LZ.0F38.W1 F5 /r", kinds{Op_r64_reg, Op_r64_or_mem, Op_r64_vvvv}, MemorySizeUInt64, 0},
	{VEX_Pdep_r32_r32_rm32, "pdep", "WIG32 VEX.LZ.F2.0F38.W0 F5 /r", kinds{Op_r32_reg, Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Pdep_r64_r64_rm64, "pdep", "only64 VEX.LZ.F2.0F38.W1 F5 /r", kinds{Op_r64_reg, Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Pext_r32_r32_rm32, "pext", "WIG32 VEX.LZ.F3.0F38.W0 F5 /r", kinds{Op_r32_reg, Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Pext_r64_r64_rm64, "pext", "only64 VEX.LZ.F3.0F38.W1 F5 /r", kinds{Op_r64_reg, Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Mulx_r32_r32_rm32, "mulx", "WIG32 VEX.LZ.F2.0F38.W0 F6 /r", kinds{Op_r32_reg, Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{VEX_Mulx_r64_r64_rm64, "mulx", "only64 VEX.LZ.F2.0F38.W1 F6 /r", kinds{Op_r64_reg, Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{VEX_Rorx_r32_rm32_imm8, "rorx", "WIG32 VEX.LZ.F2.0F3A.W0 F0 /r ib", kinds{Op_r32_reg, Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{VEX_Rorx_r64_rm64_imm8, "rorx", "only64 VEX.LZ.F2.0F3A.W1 F0 /r ib", kinds{Op_r64_reg, Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{VEX_Vpermil2ps_xmm_xmm_xmmm128_xmm_imm4, "vpermil2ps", "VEX.128.66.0F3A.W0 48 /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4, Op_imm4_m2z}, MemorySizePacked128_Float32, 0},
	{VEX_Vpermil2ps_xmm_xmm_xmm_xmmm128_imm4, "vpermil2ps", "VEX.128.66.0F3A.W1 48 /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_is4, Op_xmm_or_mem, Op_imm4_m2z}, MemorySizePacked128_Float32, 0},
	{VEX_Vpermil2ps_ymm_ymm_ymmm256_ymm_imm4, "vpermil2ps", "VEX.256.66.0F3A.W0 48 /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_ymm_is4, Op_imm4_m2z}, MemorySizePacked256_Float32, 0},
	{VEX_Vpermil2ps_ymm_ymm_ymm_ymmm256_imm4, "vpermil2ps", "VEX.256.66.0F3A.W1 48 /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_is4, Op_ymm_or_mem, Op_imm4_m2z}, MemorySizePacked256_Float32, 0},

	// VEX forms of SSSE3, SSE4.1, AES-NI and PCLMULQDQ.
	{VEX_Vphaddsw_xmm_xmm_xmmm128, "vphaddsw", "VEX.128.66.0F38.WIG 03 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vphaddsw_ymm_ymm_ymmm256, "vphaddsw", "VEX.256.66.0F38.WIG 03 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, 0},
	{VEX_Vphsubw_xmm_xmm_xmmm128, "vphsubw", "VEX.128.66.0F38.WIG 05 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vphsubw_ymm_ymm_ymmm256, "vphsubw", "VEX.256.66.0F38.WIG 05 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, 0},
	{VEX_Vphsubd_xmm_xmm_xmmm128, "vphsubd", "VEX.128.66.0F38.WIG 06 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vphsubd_ymm_ymm_ymmm256, "vphsubd", "VEX.256.66.0F38.WIG 06 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vphsubsw_xmm_xmm_xmmm128, "vphsubsw", "VEX.128.66.0F38.WIG 07 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vphsubsw_ymm_ymm_ymmm256, "vphsubsw", "VEX.256.66.0F38.WIG 07 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, 0},
	{VEX_Vpsignb_xmm_xmm_xmmm128, "vpsignb", "VEX.128.66.0F38.WIG 08 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{VEX_Vpsignb_ymm_ymm_ymmm256, "vpsignb", "VEX.256.66.0F38.WIG 08 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, 0},
	{VEX_Vpsignw_xmm_xmm_xmmm128, "vpsignw", "VEX.128.66.0F38.WIG 09 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vpsignw_ymm_ymm_ymmm256, "vpsignw", "VEX.256.66.0F38.WIG 09 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, 0},
	{VEX_Vpsignd_xmm_xmm_xmmm128, "vpsignd", "VEX.128.66.0F38.WIG 0A /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpsignd_ymm_ymm_ymmm256, "vpsignd", "VEX.256.66.0F38.WIG 0A /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpmulhrsw_xmm_xmm_xmmm128, "vpmulhrsw", "VEX.128.66.0F38.WIG 0B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vpmulhrsw_ymm_ymm_ymmm256, "vpmulhrsw", "VEX.256.66.0F38.WIG 0B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int16, 0},
	{VEX_Vpmuldq_xmm_xmm_xmmm128, "vpmuldq", "VEX.128.66.0F38.WIG 28 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpmuldq_ymm_ymm_ymmm256, "vpmuldq", "VEX.256.66.0F38.WIG 28 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpcmpeqq_xmm_xmm_xmmm128, "vpcmpeqq", "VEX.128.66.0F38.WIG 29 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, 0},
	{VEX_Vpcmpeqq_ymm_ymm_ymmm256, "vpcmpeqq", "VEX.256.66.0F38.WIG 29 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, 0},
	{VEX_Vpackusdw_xmm_xmm_xmmm128, "vpackusdw", "VEX.128.66.0F38.WIG 2B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpackusdw_ymm_ymm_ymmm256, "vpackusdw", "VEX.256.66.0F38.WIG 2B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpcmpgtq_xmm_xmm_xmmm128, "vpcmpgtq", "VEX.128.66.0F38.WIG 37 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, 0},
	{VEX_Vpcmpgtq_ymm_ymm_ymmm256, "vpcmpgtq", "VEX.256.66.0F38.WIG 37 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int64, 0},
	{VEX_Vpminsb_xmm_xmm_xmmm128, "vpminsb", "VEX.128.66.0F38.WIG 38 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{VEX_Vpminsb_ymm_ymm_ymmm256, "vpminsb", "VEX.256.66.0F38.WIG 38 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, 0},
	{VEX_Vpminsd_xmm_xmm_xmmm128, "vpminsd", "VEX.128.66.0F38.WIG 39 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpminsd_ymm_ymm_ymmm256, "vpminsd", "VEX.256.66.0F38.WIG 39 /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpminuw_xmm_xmm_xmmm128, "vpminuw", "VEX.128.66.0F38.WIG 3A /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{VEX_Vpminuw_ymm_ymm_ymmm256, "vpminuw", "VEX.256.66.0F38.WIG 3A /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt16, 0},
	{VEX_Vpminud_xmm_xmm_xmmm128, "vpminud", "VEX.128.66.0F38.WIG 3B /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{VEX_Vpminud_ymm_ymm_ymmm256, "vpminud", "VEX.256.66.0F38.WIG 3B /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt32, 0},
	{VEX_Vpmaxsb_xmm_xmm_xmmm128, "vpmaxsb", "VEX.128.66.0F38.WIG 3C /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{VEX_Vpmaxsb_ymm_ymm_ymmm256, "vpmaxsb", "VEX.256.66.0F38.WIG 3C /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int8, 0},
	{VEX_Vpmaxsd_xmm_xmm_xmmm128, "vpmaxsd", "VEX.128.66.0F38.WIG 3D /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpmaxsd_ymm_ymm_ymmm256, "vpmaxsd", "VEX.256.66.0F38.WIG 3D /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_Int32, 0},
	{VEX_Vpmaxuw_xmm_xmm_xmmm128, "vpmaxuw", "VEX.128.66.0F38.WIG 3E /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{VEX_Vpmaxuw_ymm_ymm_ymmm256, "vpmaxuw", "VEX.256.66.0F38.WIG 3E /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt16, 0},
	{VEX_Vpmaxud_xmm_xmm_xmmm128, "vpmaxud", "VEX.128.66.0F38.WIG 3F /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{VEX_Vpmaxud_ymm_ymm_ymmm256, "vpmaxud", "VEX.256.66.0F38.WIG 3F /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizePacked256_UInt32, 0},
	{VEX_Vaesenc_xmm_xmm_xmmm128, "vaesenc", "VEX.128.66.0F38.WIG DC /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vaesenc_ymm_ymm_ymmm256, "vaesenc", "VEX.256.66.0F38.WIG DC /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vaesenclast_xmm_xmm_xmmm128, "vaesenclast", "VEX.128.66.0F38.WIG DD /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vaesenclast_ymm_ymm_ymmm256, "vaesenclast", "VEX.256.66.0F38.WIG DD /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vaesdec_xmm_xmm_xmmm128, "vaesdec", "VEX.128.66.0F38.WIG DE /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vaesdec_ymm_ymm_ymmm256, "vaesdec", "VEX.256.66.0F38.WIG DE /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vaesdeclast_xmm_xmm_xmmm128, "vaesdeclast", "VEX.128.66.0F38.WIG DF /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vaesdeclast_ymm_ymm_ymmm256, "vaesdeclast", "VEX.256.66.0F38.WIG DF /r", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{VEX_Vpblendw_xmm_xmm_xmmm128_imm8, "vpblendw", "VEX.128.66.0F3A.WIG 0E /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt16, 0},
	{VEX_Vpblendw_ymm_ymm_ymmm256_imm8, "vpblendw", "VEX.256.66.0F3A.WIG 0E /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_UInt16, 0},
	{VEX_Vdpps_xmm_xmm_xmmm128_imm8, "vdpps", "VEX.128.66.0F3A.WIG 40 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Float32, 0},
	{VEX_Vdpps_ymm_ymm_ymmm256_imm8, "vdpps", "VEX.256.66.0F3A.WIG 40 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_Float32, 0},
	{VEX_Vpclmulqdq_xmm_xmm_xmmm128_imm8, "vpclmulqdq", "VEX.128.66.0F3A.WIG 44 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt64, 0},
	{VEX_Vpclmulqdq_ymm_ymm_ymmm256_imm8, "vpclmulqdq", "VEX.256.66.0F3A.WIG 44 /r ib", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_imm8}, MemorySizePacked256_UInt64, 0},
	{VEX_Vpmovsxbw_xmm_xmmm64, "vpmovsxbw", "VEX.128.66.0F38.WIG 20 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int8, 0},
	{VEX_Vpmovsxbw_ymm_xmmm128, "vpmovsxbw", "VEX.256.66.0F38.WIG 20 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{VEX_Vpmovsxbd_xmm_xmmm32, "vpmovsxbd", "VEX.128.66.0F38.WIG 21 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_Int8, 0},
	{VEX_Vpmovsxbd_ymm_xmmm64, "vpmovsxbd", "VEX.256.66.0F38.WIG 21 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int8, 0},
	{VEX_Vpmovsxbq_xmm_xmmm16, "vpmovsxbq", "VEX.128.66.0F38.WIG 22 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt16, 0},
	{VEX_Vpmovsxbq_ymm_xmmm32, "vpmovsxbq", "VEX.256.66.0F38.WIG 22 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked32_Int8, 0},
	{VEX_Vpmovsxwd_xmm_xmmm64, "vpmovsxwd", "VEX.128.66.0F38.WIG 23 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int16, 0},
	{VEX_Vpmovsxwd_ymm_xmmm128, "vpmovsxwd", "VEX.256.66.0F38.WIG 23 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{VEX_Vpmovsxwq_xmm_xmmm32, "vpmovsxwq", "VEX.128.66.0F38.WIG 24 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_Int16, 0},
	{VEX_Vpmovsxwq_ymm_xmmm64, "vpmovsxwq", "VEX.256.66.0F38.WIG 24 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int16, 0},
	{VEX_Vpmovsxdq_xmm_xmmm64, "vpmovsxdq", "VEX.128.66.0F38.WIG 25 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_Int32, 0},
	{VEX_Vpmovsxdq_ymm_xmmm128, "vpmovsxdq", "VEX.256.66.0F38.WIG 25 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{VEX_Vpmovzxbw_xmm_xmmm64, "vpmovzxbw", "VEX.128.66.0F38.WIG 30 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt8, 0},
	{VEX_Vpmovzxbw_ymm_xmmm128, "vpmovzxbw", "VEX.256.66.0F38.WIG 30 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt8, 0},
	{VEX_Vpmovzxbd_xmm_xmmm32, "vpmovzxbd", "VEX.128.66.0F38.WIG 31 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_UInt8, 0},
	{VEX_Vpmovzxbd_ymm_xmmm64, "vpmovzxbd", "VEX.256.66.0F38.WIG 31 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt8, 0},
	{VEX_Vpmovzxbq_xmm_xmmm16, "vpmovzxbq", "VEX.128.66.0F38.WIG 32 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt16, 0},
	{VEX_Vpmovzxbq_ymm_xmmm32, "vpmovzxbq", "VEX.256.66.0F38.WIG 32 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked32_UInt8, 0},
	{VEX_Vpmovzxwd_xmm_xmmm64, "vpmovzxwd", "VEX.128.66.0F38.WIG 33 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt16, 0},
	{VEX_Vpmovzxwd_ymm_xmmm128, "vpmovzxwd", "VEX.256.66.0F38.WIG 33 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt16, 0},
	{VEX_Vpmovzxwq_xmm_xmmm32, "vpmovzxwq", "VEX.128.66.0F38.WIG 34 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked32_UInt16, 0},
	{VEX_Vpmovzxwq_ymm_xmmm64, "vpmovzxwq", "VEX.256.66.0F38.WIG 34 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt16, 0},
	{VEX_Vpmovzxdq_xmm_xmmm64, "vpmovzxdq", "VEX.128.66.0F38.WIG 35 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked64_UInt32, 0},
	{VEX_Vpmovzxdq_ymm_xmmm128, "vpmovzxdq", "VEX.256.66.0F38.WIG 35 /r", kinds{Op_ymm_reg, Op_xmm_or_mem}, MemorySizePacked128_UInt32, 0},
	{VEX_Vaesimc_xmm_xmmm128, "vaesimc", "VEX.128.66.0F38.WIG DB /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{VEX_Vaeskeygenassist_xmm_xmmm128_imm8, "vaeskeygenassist", "VEX.128.66.0F3A.WIG DF /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizeUInt128, 0},
	{VEX_Vinsertps_xmm_xmm_xmmm32_imm8, "vinsertps", "VEX.128.66.0F3A.WIG 21 /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizeFloat32, 0},
	{VEX_Vextractps_rm32_xmm_imm8, "vextractps", "VEX.128.66.0F3A.WIG 17 /r ib", kinds{Op_r32_or_mem, Op_xmm_reg, Op_imm8}, MemorySizeFloat32, 0},
}
