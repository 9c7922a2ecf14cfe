// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// xopForms describes the AMD XOP-encoded instructions.
var xopForms = [...]form{
	{XOP_Vpcmov_xmm_xmm_xmmm128_xmm, "vpcmov", "XOP.128.X8.W0 A2 /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizeUInt128, 0},
	{XOP_Vpcmov_xmm_xmm_xmm_xmmm128, "vpcmov", "XOP.128.X8.W1 A2 /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_is4, Op_xmm_or_mem}, MemorySizeUInt128, 0},
	{XOP_Vpcmov_ymm_ymm_ymmm256_ymm, "vpcmov", "XOP.256.X8.W0 A2 /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_or_mem, Op_ymm_is4}, MemorySizeUInt256, 0},
	{XOP_Vpcmov_ymm_ymm_ymm_ymmm256, "vpcmov", "XOP.256.X8.W1 A2 /r /is4", kinds{Op_ymm_reg, Op_ymm_vvvv, Op_ymm_is4, Op_ymm_or_mem}, MemorySizeUInt256, 0},
	{XOP_Vprotb_xmm_xmmm128_xmm, "vprotb", "XOP.128.X9.W0 90 /r", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_xmm_vvvv}, MemorySizePacked128_Int8, 0},
	{XOP_Vprotb_xmm_xmm_xmmm128, "vprotb", "XOP.128.X9.W1 90 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{XOP_Vprotb_xmm_xmmm128_imm8, "vprotb", "XOP.128.X8.W0 C0 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int8, 0},
	{XOP_Vprotw_xmm_xmmm128_xmm, "vprotw", "XOP.128.X9.W0 91 /r", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_xmm_vvvv}, MemorySizePacked128_Int16, 0},
	{XOP_Vprotw_xmm_xmm_xmmm128, "vprotw", "XOP.128.X9.W1 91 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int16, 0},
	{XOP_Vprotw_xmm_xmmm128_imm8, "vprotw", "XOP.128.X8.W0 C1 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int16, 0},
	{XOP_Vprotd_xmm_xmmm128_xmm, "vprotd", "XOP.128.X9.W0 92 /r", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_xmm_vvvv}, MemorySizePacked128_Int32, 0},
	{XOP_Vprotd_xmm_xmm_xmmm128, "vprotd", "XOP.128.X9.W1 92 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int32, 0},
	{XOP_Vprotd_xmm_xmmm128_imm8, "vprotd", "XOP.128.X8.W0 C2 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int32, 0},
	{XOP_Vprotq_xmm_xmmm128_xmm, "vprotq", "XOP.128.X9.W0 93 /r", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_xmm_vvvv}, MemorySizePacked128_Int64, 0},
	{XOP_Vprotq_xmm_xmm_xmmm128, "vprotq", "XOP.128.X9.W1 93 /r", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem}, MemorySizePacked128_Int64, 0},
	{XOP_Vprotq_xmm_xmmm128_imm8, "vprotq", "XOP.128.X8.W0 C3 /r ib", kinds{Op_xmm_reg, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int64, 0},
	{XOP_Vpcomb_xmm_xmm_xmmm128_imm8, "vpcomb", "XOP.128.X8.W0 CC /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int8, 0},
	{XOP_Vpcomw_xmm_xmm_xmmm128_imm8, "vpcomw", "XOP.128.X8.W0 CD /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int16, 0},
	{XOP_Vpcomd_xmm_xmm_xmmm128_imm8, "vpcomd", "XOP.128.X8.W0 CE /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int32, 0},
	{XOP_Vpcomq_xmm_xmm_xmmm128_imm8, "vpcomq", "XOP.128.X8.W0 CF /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_Int64, 0},
	{XOP_Vpcomub_xmm_xmm_xmmm128_imm8, "vpcomub", "XOP.128.X8.W0 EC /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt8, 0},
	{XOP_Vpcomuw_xmm_xmm_xmmm128_imm8, "vpcomuw", "XOP.128.X8.W0 ED /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt16, 0},
	{XOP_Vpcomud_xmm_xmm_xmmm128_imm8, "vpcomud", "XOP.128.X8.W0 EE /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt32, 0},
	{XOP_Vpcomuq_xmm_xmm_xmmm128_imm8, "vpcomuq", "XOP.128.X8.W0 EF /r ib", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_imm8}, MemorySizePacked128_UInt64, 0},
	{XOP_Vfrczps_xmm_xmmm128, "vfrczps", "XOP.128.X9.W0 80 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float32, 0},
	{XOP_Vfrczps_ymm_ymmm256, "vfrczps", "XOP.256.X9.W0 80 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float32, 0},
	{XOP_Vfrczpd_xmm_xmmm128, "vfrczpd", "XOP.128.X9.W0 81 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Float64, 0},
	{XOP_Vfrczpd_ymm_ymmm256, "vfrczpd", "XOP.256.X9.W0 81 /r", kinds{Op_ymm_reg, Op_ymm_or_mem}, MemorySizePacked256_Float64, 0},
	{XOP_Vfrczss_xmm_xmmm32, "vfrczss", "XOP.128.X9.W0 82 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat32, 0},
	{XOP_Vfrczsd_xmm_xmmm64, "vfrczsd", "XOP.128.X9.W0 83 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizeFloat64, 0},
	{XOP_Vpmacssww_xmm_xmm_xmmm128_xmm, "vpmacssww", "XOP.128.X8.W0 85 /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizePacked128_Int16, 0},
	{XOP_Vpmacsswd_xmm_xmm_xmmm128_xmm, "vpmacsswd", "XOP.128.X8.W0 86 /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizePacked128_Int16, 0},
	{XOP_Vpmacssdd_xmm_xmm_xmmm128_xmm, "vpmacssdd", "XOP.128.X8.W0 8E /r /is4", kinds{Op_xmm_reg, Op_xmm_vvvv, Op_xmm_or_mem, Op_xmm_is4}, MemorySizePacked128_Int32, 0},
	{XOP_Vphaddbw_xmm_xmmm128, "vphaddbw", "XOP.128.X9.W0 C1 /r", kinds{Op_xmm_reg, Op_xmm_or_mem}, MemorySizePacked128_Int8, 0},
	{XOP_Blcfill_r32_rm32, "blcfill", "WIG32 XOP.L0.X9.W0 01 /1", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blcfill_r64_rm64, "blcfill", "only64 XOP.L0.X9.W1 01 /1", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Blsfill_r32_rm32, "blsfill", "WIG32 XOP.L0.X9.W0 01 /2", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blsfill_r64_rm64, "blsfill", "only64 XOP.L0.X9.W1 01 /2", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Blcs_r32_rm32, "blcs", "WIG32 XOP.L0.X9.W0 01 /3", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blcs_r64_rm64, "blcs", "only64 XOP.L0.X9.W1 01 /3", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Tzmsk_r32_rm32, "tzmsk", "WIG32 XOP.L0.X9.W0 01 /4", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Tzmsk_r64_rm64, "tzmsk", "only64 XOP.L0.X9.W1 01 /4", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Blcic_r32_rm32, "blcic", "WIG32 XOP.L0.X9.W0 01 /5", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blcic_r64_rm64, "blcic", "only64 XOP.L0.X9.W1 01 /5", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Blsic_r32_rm32, "blsic", "WIG32 XOP.L0.X9.W0 01 /6", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blsic_r64_rm64, "blsic", "only64 XOP.L0.X9.W1 01 /6", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_T1mskc_r32_rm32, "t1mskc", "WIG32 XOP.L0.X9.W0 01 /7", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_T1mskc_r64_rm64, "t1mskc", "only64 XOP.L0.X9.W1 01 /7", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Blcmsk_r32_rm32, "blcmsk", "WIG32 XOP.L0.X9.W0 02 /1", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blcmsk_r64_rm64, "blcmsk", "only64 XOP.L0.X9.W1 02 /1", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Blci_r32_rm32, "blci", "WIG32 XOP.L0.X9.W0 02 /6", kinds{Op_r32_vvvv, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{XOP_Blci_r64_rm64, "blci", "only64 XOP.L0.X9.W1 02 /6", kinds{Op_r64_vvvv, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{XOP_Bextr_r32_rm32_imm32, "bextr", "WIG32 XOP.L0.XA.W0 10 /r id", kinds{Op_r32_reg, Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, 0},
	{XOP_Bextr_r64_rm64_imm32, "bextr", "only64 XOP.L0.XA.W1 10 /r id", kinds{Op_r64_reg, Op_r64_or_mem, Op_imm32}, MemorySizeUInt64, 0},
}
