// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// legacyForms describes the one-byte opcode map.
var legacyForms = [...]form{
	{Add_rm8_r8, "add", "00 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Add_rm16_r16, "add", "o16 01 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Add_rm32_r32, "add", "o32 01 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Add_rm64_r64, "add", "REX.W 01 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Add_r8_rm8, "add", "02 /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Add_r16_rm16, "add", "o16 03 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Add_r32_rm32, "add", "o32 03 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Add_r64_rm64, "add", "REX.W 03 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Add_AL_imm8, "add", "04 ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Add_AX_imm16, "add", "o16 05 iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Add_EAX_imm32, "add", "o32 05 id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Add_RAX_imm32, "add", "REX.W 05 id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Or_rm8_r8, "or", "08 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Or_rm16_r16, "or", "o16 09 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Or_rm32_r32, "or", "o32 09 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Or_rm64_r64, "or", "REX.W 09 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Or_r8_rm8, "or", "0A /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Or_r16_rm16, "or", "o16 0B /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Or_r32_rm32, "or", "o32 0B /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Or_r64_rm64, "or", "REX.W 0B /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Or_AL_imm8, "or", "0C ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Or_AX_imm16, "or", "o16 0D iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Or_EAX_imm32, "or", "o32 0D id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Or_RAX_imm32, "or", "REX.W 0D id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Adc_rm8_r8, "adc", "10 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Adc_rm16_r16, "adc", "o16 11 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Adc_rm32_r32, "adc", "o32 11 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Adc_rm64_r64, "adc", "REX.W 11 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Adc_r8_rm8, "adc", "12 /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Adc_r16_rm16, "adc", "o16 13 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Adc_r32_rm32, "adc", "o32 13 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Adc_r64_rm64, "adc", "REX.W 13 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Adc_AL_imm8, "adc", "14 ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Adc_AX_imm16, "adc", "o16 15 iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Adc_EAX_imm32, "adc", "o32 15 id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Adc_RAX_imm32, "adc", "REX.W 15 id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Sbb_rm8_r8, "sbb", "18 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm16_r16, "sbb", "o16 19 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm32_r32, "sbb", "o32 19 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm64_r64, "sbb", "REX.W 19 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Sbb_r8_rm8, "sbb", "1A /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Sbb_r16_rm16, "sbb", "o16 1B /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Sbb_r32_rm32, "sbb", "o32 1B /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Sbb_r64_rm64, "sbb", "REX.W 1B /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Sbb_AL_imm8, "sbb", "1C ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Sbb_AX_imm16, "sbb", "o16 1D iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Sbb_EAX_imm32, "sbb", "o32 1D id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Sbb_RAX_imm32, "sbb", "REX.W 1D id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{And_rm8_r8, "and", "20 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{And_rm16_r16, "and", "o16 21 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{And_rm32_r32, "and", "o32 21 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{And_rm64_r64, "and", "REX.W 21 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{And_r8_rm8, "and", "22 /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{And_r16_rm16, "and", "o16 23 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{And_r32_rm32, "and", "o32 23 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{And_r64_rm64, "and", "REX.W 23 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{And_AL_imm8, "and", "24 ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{And_AX_imm16, "and", "o16 25 iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{And_EAX_imm32, "and", "o32 25 id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{And_RAX_imm32, "and", "REX.W 25 id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Sub_rm8_r8, "sub", "28 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Sub_rm16_r16, "sub", "o16 29 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Sub_rm32_r32, "sub", "o32 29 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Sub_rm64_r64, "sub", "REX.W 29 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Sub_r8_rm8, "sub", "2A /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Sub_r16_rm16, "sub", "o16 2B /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Sub_r32_rm32, "sub", "o32 2B /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Sub_r64_rm64, "sub", "REX.W 2B /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Sub_AL_imm8, "sub", "2C ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Sub_AX_imm16, "sub", "o16 2D iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Sub_EAX_imm32, "sub", "o32 2D id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Sub_RAX_imm32, "sub", "REX.W 2D id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Xor_rm8_r8, "xor", "30 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Xor_rm16_r16, "xor", "o16 31 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Xor_rm32_r32, "xor", "o32 31 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Xor_rm64_r64, "xor", "REX.W 31 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Xor_r8_rm8, "xor", "32 /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Xor_r16_rm16, "xor", "o16 33 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Xor_r32_rm32, "xor", "o32 33 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Xor_r64_rm64, "xor", "REX.W 33 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Xor_AL_imm8, "xor", "34 ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Xor_AX_imm16, "xor", "o16 35 iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Xor_EAX_imm32, "xor", "o32 35 id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Xor_RAX_imm32, "xor", "REX.W 35 id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Cmp_rm8_r8, "cmp", "38 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, 0},
	{Cmp_rm16_r16, "cmp", "o16 39 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Cmp_rm32_r32, "cmp", "o32 39 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Cmp_rm64_r64, "cmp", "REX.W 39 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, 0},
	{Cmp_r8_rm8, "cmp", "3A /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Cmp_r16_rm16, "cmp", "o16 3B /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Cmp_r32_rm32, "cmp", "o32 3B /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Cmp_r64_rm64, "cmp", "REX.W 3B /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Cmp_AL_imm8, "cmp", "3C ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Cmp_AX_imm16, "cmp", "o16 3D iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Cmp_EAX_imm32, "cmp", "o32 3D id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Cmp_RAX_imm32, "cmp", "REX.W 3D id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Add_rm8_imm8, "add", "80 /0 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Add_rm16_imm16, "add", "o16 81 /0 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Add_rm32_imm32, "add", "o32 81 /0 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Add_rm64_imm32, "add", "REX.W 81 /0 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Add_rm8_imm8_82, "add", "!64 82 /0 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Add_rm16_imm8, "add", "o16 83 /0 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Add_rm32_imm8, "add", "o32 83 /0 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Add_rm64_imm8, "add", "REX.W 83 /0 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Or_rm8_imm8, "or", "80 /1 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Or_rm16_imm16, "or", "o16 81 /1 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Or_rm32_imm32, "or", "o32 81 /1 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Or_rm64_imm32, "or", "REX.W 81 /1 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Or_rm8_imm8_82, "or", "!64 82 /1 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Or_rm16_imm8, "or", "o16 83 /1 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Or_rm32_imm8, "or", "o32 83 /1 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Or_rm64_imm8, "or", "REX.W 83 /1 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Adc_rm8_imm8, "adc", "80 /2 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Adc_rm16_imm16, "adc", "o16 81 /2 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Adc_rm32_imm32, "adc", "o32 81 /2 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Adc_rm64_imm32, "adc", "REX.W 81 /2 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Adc_rm8_imm8_82, "adc", "!64 82 /2 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Adc_rm16_imm8, "adc", "o16 83 /2 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Adc_rm32_imm8, "adc", "o32 83 /2 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Adc_rm64_imm8, "adc", "REX.W 83 /2 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm8_imm8, "sbb", "80 /3 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm16_imm16, "sbb", "o16 81 /3 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm32_imm32, "sbb", "o32 81 /3 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm64_imm32, "sbb", "REX.W 81 /3 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm8_imm8_82, "sbb", "!64 82 /3 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm16_imm8, "sbb", "o16 83 /3 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm32_imm8, "sbb", "o32 83 /3 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Sbb_rm64_imm8, "sbb", "REX.W 83 /3 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{And_rm8_imm8, "and", "80 /4 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{And_rm16_imm16, "and", "o16 81 /4 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{And_rm32_imm32, "and", "o32 81 /4 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{And_rm64_imm32, "and", "REX.W 81 /4 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{And_rm8_imm8_82, "and", "!64 82 /4 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{And_rm16_imm8, "and", "o16 83 /4 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{And_rm32_imm8, "and", "o32 83 /4 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{And_rm64_imm8, "and", "REX.W 83 /4 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Sub_rm8_imm8, "sub", "80 /5 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Sub_rm16_imm16, "sub", "o16 81 /5 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Sub_rm32_imm32, "sub", "o32 81 /5 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Sub_rm64_imm32, "sub", "REX.W 81 /5 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Sub_rm8_imm8_82, "sub", "!64 82 /5 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Sub_rm16_imm8, "sub", "o16 83 /5 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Sub_rm32_imm8, "sub", "o32 83 /5 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Sub_rm64_imm8, "sub", "REX.W 83 /5 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Xor_rm8_imm8, "xor", "80 /6 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Xor_rm16_imm16, "xor", "o16 81 /6 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Xor_rm32_imm32, "xor", "o32 81 /6 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Xor_rm64_imm32, "xor", "REX.W 81 /6 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Xor_rm8_imm8_82, "xor", "!64 82 /6 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Xor_rm16_imm8, "xor", "o16 83 /6 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Xor_rm32_imm8, "xor", "o32 83 /6 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Xor_rm64_imm8, "xor", "REX.W 83 /6 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Cmp_rm8_imm8, "cmp", "80 /7 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Cmp_rm16_imm16, "cmp", "o16 81 /7 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, 0},
	{Cmp_rm32_imm32, "cmp", "o32 81 /7 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, 0},
	{Cmp_rm64_imm32, "cmp", "REX.W 81 /7 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, 0},
	{Cmp_rm8_imm8_82, "cmp", "!64 82 /7 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Cmp_rm16_imm8, "cmp", "o16 83 /7 ib", kinds{Op_r16_or_mem, Op_imm8sex16}, MemorySizeUInt16, 0},
	{Cmp_rm32_imm8, "cmp", "o32 83 /7 ib", kinds{Op_r32_or_mem, Op_imm8sex32}, MemorySizeUInt32, 0},
	{Cmp_rm64_imm8, "cmp", "REX.W 83 /7 ib", kinds{Op_r64_or_mem, Op_imm8sex64}, MemorySizeUInt64, 0},
	{Pushw_ES, "push", "o16 !64 06", kinds{Op_es}, MemorySizeUnknown, 0},
	{Pushd_ES, "push", "o32 !64 06", kinds{Op_es}, MemorySizeUnknown, 0},
	{Popw_ES, "pop", "o16 !64 07", kinds{Op_es}, MemorySizeUnknown, 0},
	{Popd_ES, "pop", "o32 !64 07", kinds{Op_es}, MemorySizeUnknown, 0},
	{Pushw_CS, "push", "o16 !64 0E", kinds{Op_cs}, MemorySizeUnknown, 0},
	{Pushd_CS, "push", "o32 !64 0E", kinds{Op_cs}, MemorySizeUnknown, 0},
	{Pushw_SS, "push", "o16 !64 16", kinds{Op_ss}, MemorySizeUnknown, 0},
	{Pushd_SS, "push", "o32 !64 16", kinds{Op_ss}, MemorySizeUnknown, 0},
	{Popw_SS, "pop", "o16 !64 17", kinds{Op_ss}, MemorySizeUnknown, 0},
	{Popd_SS, "pop", "o32 !64 17", kinds{Op_ss}, MemorySizeUnknown, 0},
	{Pushw_DS, "push", "o16 !64 1E", kinds{Op_ds}, MemorySizeUnknown, 0},
	{Pushd_DS, "push", "o32 !64 1E", kinds{Op_ds}, MemorySizeUnknown, 0},
	{Popw_DS, "pop", "o16 !64 1F", kinds{Op_ds}, MemorySizeUnknown, 0},
	{Popd_DS, "pop", "o32 !64 1F", kinds{Op_ds}, MemorySizeUnknown, 0},
	{Daa, "daa", "!64 27", kinds{}, MemorySizeUnknown, 0},
	{Das, "das", "!64 2F", kinds{}, MemorySizeUnknown, 0},
	{Aaa, "aaa", "!64 37", kinds{}, MemorySizeUnknown, 0},
	{Aas, "aas", "!64 3F", kinds{}, MemorySizeUnknown, 0},
	{Inc_r16, "inc", "o16 !64 40+rw", kinds{Op_r16_opcode}, MemorySizeUnknown, 0},
	{Inc_r32, "inc", "o32 !64 40+rd", kinds{Op_r32_opcode}, MemorySizeUnknown, 0},
	{Dec_r16, "dec", "o16 !64 48+rw", kinds{Op_r16_opcode}, MemorySizeUnknown, 0},
	{Dec_r32, "dec", "o32 !64 48+rd", kinds{Op_r32_opcode}, MemorySizeUnknown, 0},
	{Push_r16, "push", "o16 D64 50+rw", kinds{Op_r16_opcode}, MemorySizeUnknown, 0},
	{Push_r32, "push", "o32 !64 50+rd", kinds{Op_r32_opcode}, MemorySizeUnknown, 0},
	{Push_r64, "push", "o64 only64 D64 50+ro", kinds{Op_r64_opcode}, MemorySizeUnknown, 0},
	{Pop_r16, "pop", "o16 D64 58+rw", kinds{Op_r16_opcode}, MemorySizeUnknown, 0},
	{Pop_r32, "pop", "o32 !64 58+rd", kinds{Op_r32_opcode}, MemorySizeUnknown, 0},
	{Pop_r64, "pop", "o64 only64 D64 58+ro", kinds{Op_r64_opcode}, MemorySizeUnknown, 0},
	{Pushaw, "pushaw", "o16 !64 60", kinds{}, MemorySizeUnknown, 0},
	{Pushad, "pushad", "o32 !64 60", kinds{}, MemorySizeUnknown, 0},
	{Popaw, "popaw", "o16 !64 61", kinds{}, MemorySizeUnknown, 0},
	{Popad, "popad", "o32 !64 61", kinds{}, MemorySizeUnknown, 0},
	{Bound_r16_m1616, "bound", "o16 !64 62 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeBound16_WordWord, 0},
	{Bound_r32_m3232, "bound", "o32 !64 62 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeBound32_DwordDword, 0},
	{Arpl_rm16_r16, "arpl", "!64 63 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Movsxd_r16_rm16, "movsxd", "o16 only64 63 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeInt16, 0},
	{Movsxd_r32_rm32, "movsxd", "o32 only64 63 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeInt32, 0},
	{Movsxd_r64_rm32, "movsxd", "REX.W 63 /r", kinds{Op_r64_reg, Op_r32_or_mem}, MemorySizeInt32, 0},
	{Push_imm16, "push", "o16 D64 68 iw", kinds{Op_imm16}, MemorySizeUnknown, 0},
	{Pushd_imm32, "push", "o32 !64 68 id", kinds{Op_imm32}, MemorySizeUnknown, 0},
	{Pushq_imm32, "push", "o64 only64 D64 68 id", kinds{Op_imm32sex64}, MemorySizeUnknown, 0},
	{Imul_r16_rm16_imm16, "imul", "o16 69 /r iw", kinds{Op_r16_reg, Op_r16_or_mem, Op_imm16}, MemorySizeInt16, 0},
	{Imul_r32_rm32_imm32, "imul", "o32 69 /r id", kinds{Op_r32_reg, Op_r32_or_mem, Op_imm32}, MemorySizeInt32, 0},
	{Imul_r64_rm64_imm32, "imul", "REX.W 69 /r id", kinds{Op_r64_reg, Op_r64_or_mem, Op_imm32sex64}, MemorySizeInt64, 0},
	{Pushw_imm8, "push", "o16 D64 6A ib", kinds{Op_imm8sex16}, MemorySizeUnknown, 0},
	{Pushd_imm8, "push", "o32 !64 6A ib", kinds{Op_imm8sex32}, MemorySizeUnknown, 0},
	{Pushq_imm8, "push", "o64 only64 D64 6A ib", kinds{Op_imm8sex64}, MemorySizeUnknown, 0},
	{Imul_r16_rm16_imm8, "imul", "o16 6B /r ib", kinds{Op_r16_reg, Op_r16_or_mem, Op_imm8sex16}, MemorySizeInt16, 0},
	{Imul_r32_rm32_imm8, "imul", "o32 6B /r ib", kinds{Op_r32_reg, Op_r32_or_mem, Op_imm8sex32}, MemorySizeInt32, 0},
	{Imul_r64_rm64_imm8, "imul", "REX.W 6B /r ib", kinds{Op_r64_reg, Op_r64_or_mem, Op_imm8sex64}, MemorySizeInt64, 0},
	{Insb_m8_DX, "insb", "6C", kinds{Op_es_rDI, Op_dx}, MemorySizeUInt8, flagRep | flagString},
	{Insw_m16_DX, "insw", "o16 6D", kinds{Op_es_rDI, Op_dx}, MemorySizeUInt16, flagRep | flagString},
	{Insd_m32_DX, "insd", "6D", kinds{Op_es_rDI, Op_dx}, MemorySizeUInt32, flagRep | flagString},
	{Outsb_DX_m8, "outsb", "6E", kinds{Op_dx, Op_seg_rSI}, MemorySizeUInt8, flagRep | flagString},
	{Outsw_DX_m16, "outsw", "o16 6F", kinds{Op_dx, Op_seg_rSI}, MemorySizeUInt16, flagRep | flagString},
	{Outsd_DX_m32, "outsd", "6F", kinds{Op_dx, Op_seg_rSI}, MemorySizeUInt32, flagRep | flagString},
	{Jo_rel8_16, "jo", "o16 F64 70 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jo_rel8_32, "jo", "o32 !64 70 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jo_rel8_64, "jo", "o64 only64 F64 70 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jno_rel8_16, "jno", "o16 F64 71 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jno_rel8_32, "jno", "o32 !64 71 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jno_rel8_64, "jno", "o64 only64 F64 71 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jb_rel8_16, "jb", "o16 F64 72 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jb_rel8_32, "jb", "o32 !64 72 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jb_rel8_64, "jb", "o64 only64 F64 72 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jae_rel8_16, "jae", "o16 F64 73 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jae_rel8_32, "jae", "o32 !64 73 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jae_rel8_64, "jae", "o64 only64 F64 73 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Je_rel8_16, "je", "o16 F64 74 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Je_rel8_32, "je", "o32 !64 74 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Je_rel8_64, "je", "o64 only64 F64 74 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jne_rel8_16, "jne", "o16 F64 75 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jne_rel8_32, "jne", "o32 !64 75 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jne_rel8_64, "jne", "o64 only64 F64 75 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jbe_rel8_16, "jbe", "o16 F64 76 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jbe_rel8_32, "jbe", "o32 !64 76 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jbe_rel8_64, "jbe", "o64 only64 F64 76 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Ja_rel8_16, "ja", "o16 F64 77 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Ja_rel8_32, "ja", "o32 !64 77 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Ja_rel8_64, "ja", "o64 only64 F64 77 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Js_rel8_16, "js", "o16 F64 78 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Js_rel8_32, "js", "o32 !64 78 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Js_rel8_64, "js", "o64 only64 F64 78 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jns_rel8_16, "jns", "o16 F64 79 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jns_rel8_32, "jns", "o32 !64 79 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jns_rel8_64, "jns", "o64 only64 F64 79 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jp_rel8_16, "jp", "o16 F64 7A cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jp_rel8_32, "jp", "o32 !64 7A cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jp_rel8_64, "jp", "o64 only64 F64 7A cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jnp_rel8_16, "jnp", "o16 F64 7B cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jnp_rel8_32, "jnp", "o32 !64 7B cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jnp_rel8_64, "jnp", "o64 only64 F64 7B cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jl_rel8_16, "jl", "o16 F64 7C cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jl_rel8_32, "jl", "o32 !64 7C cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jl_rel8_64, "jl", "o64 only64 F64 7C cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jge_rel8_16, "jge", "o16 F64 7D cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jge_rel8_32, "jge", "o32 !64 7D cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jge_rel8_64, "jge", "o64 only64 F64 7D cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jle_rel8_16, "jle", "o16 F64 7E cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jle_rel8_32, "jle", "o32 !64 7E cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jle_rel8_64, "jle", "o64 only64 F64 7E cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jg_rel8_16, "jg", "o16 F64 7F cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jg_rel8_32, "jg", "o32 !64 7F cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jg_rel8_64, "jg", "o64 only64 F64 7F cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Test_rm8_r8, "test", "84 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, 0},
	{Test_rm16_r16, "test", "o16 85 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Test_rm32_r32, "test", "o32 85 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Test_rm64_r64, "test", "REX.W 85 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, 0},
	{Xchg_rm8_r8, "xchg", "86 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Xchg_rm16_r16, "xchg", "o16 87 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Xchg_rm32_r32, "xchg", "o32 87 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Xchg_rm64_r64, "xchg", "REX.W 87 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Mov_rm8_r8, "mov", "88 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagXreleaseNoLock},
	{Mov_rm16_r16, "mov", "o16 89 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagXreleaseNoLock},
	{Mov_rm32_r32, "mov", "o32 89 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagXreleaseNoLock},
	{Mov_rm64_r64, "mov", "REX.W 89 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagXreleaseNoLock},
	{Mov_r8_rm8, "mov", "8A /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Mov_r16_rm16, "mov", "o16 8B /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Mov_r32_rm32, "mov", "o32 8B /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Mov_r64_rm64, "mov", "REX.W 8B /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Mov_rm16_Sreg, "mov", "o16 8C /r", kinds{Op_r16_or_mem, Op_seg_reg}, MemorySizeUInt16, 0},
	{Mov_r32m16_Sreg, "mov", "o32 8C /r", kinds{Op_r32_or_mem, Op_seg_reg}, MemorySizeUInt16, 0},
	{Mov_r64m16_Sreg, "mov", "REX.W 8C /r", kinds{Op_r64_or_mem, Op_seg_reg}, MemorySizeUInt16, 0},
	{Lea_r16_m, "lea", "o16 8D /r", kinds{Op_r16_reg, Op_mem}, MemorySizeUnknown, 0},
	{Lea_r32_m, "lea", "o32 8D /r", kinds{Op_r32_reg, Op_mem}, MemorySizeUnknown, 0},
	{Lea_r64_m, "lea", "REX.W 8D /r", kinds{Op_r64_reg, Op_mem}, MemorySizeUnknown, 0},
	{Mov_Sreg_rm16, "mov", "o16 8E /r", kinds{Op_seg_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Mov_Sreg_r32m16, "mov", "o32 8E /r", kinds{Op_seg_reg, Op_r32_or_mem}, MemorySizeUInt16, 0},
	{Mov_Sreg_r64m16, "mov", "REX.W 8E /r", kinds{Op_seg_reg, Op_r64_or_mem}, MemorySizeUInt16, 0},
	{Pop_rm16, "pop", "o16 D64 8F /0", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Pop_rm32, "pop", "o32 !64 8F /0", kinds{Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Pop_rm64, "pop", "o64 only64 D64 8F /0", kinds{Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Nopw, "nop", "o16 NOREXB 90", kinds{}, MemorySizeUnknown, 0},
	{Nopd, "nop", "o32 NOREXB 90", kinds{}, MemorySizeUnknown, 0},
	{Nopq, "nop", "o64 NOREXB 90", kinds{}, MemorySizeUnknown, 0},
	{Pause, "pause", "F3 NOREXB -nopause 90", kinds{}, MemorySizeUnknown, 0},
	{Xchg_r16_AX, "xchg", "o16 90+rw", kinds{Op_r16_opcode, Op_ax}, MemorySizeUnknown, 0},
	{Xchg_r32_EAX, "xchg", "o32 90+rd", kinds{Op_r32_opcode, Op_eax}, MemorySizeUnknown, 0},
	{Xchg_r64_RAX, "xchg", "REX.W 90+ro", kinds{Op_r64_opcode, Op_rax}, MemorySizeUnknown, 0},
	{Cbw, "cbw", "o16 98", kinds{}, MemorySizeUnknown, 0},
	{Cwde, "cwde", "o32 98", kinds{}, MemorySizeUnknown, 0},
	{Cdqe, "cdqe", "REX.W 98", kinds{}, MemorySizeUnknown, 0},
	{Cwd, "cwd", "o16 99", kinds{}, MemorySizeUnknown, 0},
	{Cdq, "cdq", "o32 99", kinds{}, MemorySizeUnknown, 0},
	{Cqo, "cqo", "REX.W 99", kinds{}, MemorySizeUnknown, 0},
	{Call_ptr1616, "call", "o16 !64 9A cd", kinds{Op_farbr2_2}, MemorySizeUnknown, flagCall | flagFar},
	{Call_ptr1632, "call", "o32 !64 9A cp", kinds{Op_farbr4_2}, MemorySizeUnknown, flagCall | flagFar},
	{Wait, "wait", "9B", kinds{}, MemorySizeUnknown, 0},
	{Pushfw, "pushf", "o16 D64 9C", kinds{}, MemorySizeUnknown, 0},
	{Pushfd, "pushfd", "o32 !64 9C", kinds{}, MemorySizeUnknown, 0},
	{Pushfq, "pushfq", "o64 only64 D64 9C", kinds{}, MemorySizeUnknown, 0},
	{Popfw, "popf", "o16 D64 9D", kinds{}, MemorySizeUnknown, 0},
	{Popfd, "popfd", "o32 !64 9D", kinds{}, MemorySizeUnknown, 0},
	{Popfq, "popfq", "o64 only64 D64 9D", kinds{}, MemorySizeUnknown, 0},
	{Sahf, "sahf", "9E", kinds{}, MemorySizeUnknown, 0},
	{Lahf, "lahf", "9F", kinds{}, MemorySizeUnknown, 0},
	{Mov_AL_moffs8, "mov", "A0", kinds{Op_al, Op_mem_offs}, MemorySizeUInt8, 0},
	{Mov_AX_moffs16, "mov", "o16 A1", kinds{Op_ax, Op_mem_offs}, MemorySizeUInt16, 0},
	{Mov_EAX_moffs32, "mov", "o32 A1", kinds{Op_eax, Op_mem_offs}, MemorySizeUInt32, 0},
	{Mov_RAX_moffs64, "mov", "REX.W A1", kinds{Op_rax, Op_mem_offs}, MemorySizeUInt64, 0},
	{Mov_moffs8_AL, "mov", "A2", kinds{Op_mem_offs, Op_al}, MemorySizeUInt8, 0},
	{Mov_moffs16_AX, "mov", "o16 A3", kinds{Op_mem_offs, Op_ax}, MemorySizeUInt16, 0},
	{Mov_moffs32_EAX, "mov", "o32 A3", kinds{Op_mem_offs, Op_eax}, MemorySizeUInt32, 0},
	{Mov_moffs64_RAX, "mov", "REX.W A3", kinds{Op_mem_offs, Op_rax}, MemorySizeUInt64, 0},
	{Movsb_m8_m8, "movsb", "A4", kinds{Op_es_rDI, Op_seg_rSI}, MemorySizeUInt8, flagRep | flagString},
	{Movsw_m16_m16, "movsw", "o16 A5", kinds{Op_es_rDI, Op_seg_rSI}, MemorySizeUInt16, flagRep | flagString},
	{Movsd_m32_m32, "movsd", "o32 A5", kinds{Op_es_rDI, Op_seg_rSI}, MemorySizeUInt32, flagRep | flagString},
	{Movsq_m64_m64, "movsq", "REX.W A5", kinds{Op_es_rDI, Op_seg_rSI}, MemorySizeUInt64, flagRep | flagString},
	{Cmpsb_m8_m8, "cmpsb", "A6", kinds{Op_seg_rSI, Op_es_rDI}, MemorySizeUInt8, flagRepeRepne | flagString},
	{Cmpsw_m16_m16, "cmpsw", "o16 A7", kinds{Op_seg_rSI, Op_es_rDI}, MemorySizeUInt16, flagRepeRepne | flagString},
	{Cmpsd_m32_m32, "cmpsd", "o32 A7", kinds{Op_seg_rSI, Op_es_rDI}, MemorySizeUInt32, flagRepeRepne | flagString},
	{Cmpsq_m64_m64, "cmpsq", "REX.W A7", kinds{Op_seg_rSI, Op_es_rDI}, MemorySizeUInt64, flagRepeRepne | flagString},
	{Test_AL_imm8, "test", "A8 ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{Test_AX_imm16, "test", "o16 A9 iw", kinds{Op_ax, Op_imm16}, MemorySizeUnknown, 0},
	{Test_EAX_imm32, "test", "o32 A9 id", kinds{Op_eax, Op_imm32}, MemorySizeUnknown, 0},
	{Test_RAX_imm32, "test", "REX.W A9 id", kinds{Op_rax, Op_imm32sex64}, MemorySizeUnknown, 0},
	{Stosb_m8_AL, "stosb", "AA", kinds{Op_es_rDI, Op_al}, MemorySizeUInt8, flagRep | flagString},
	{Stosw_m16_AX, "stosw", "o16 AB", kinds{Op_es_rDI, Op_ax}, MemorySizeUInt16, flagRep | flagString},
	{Stosd_m32_EAX, "stosd", "o32 AB", kinds{Op_es_rDI, Op_eax}, MemorySizeUInt32, flagRep | flagString},
	{Stosq_m64_RAX, "stosq", "REX.W AB", kinds{Op_es_rDI, Op_rax}, MemorySizeUInt64, flagRep | flagString},
	{Lodsb_AL_m8, "lodsb", "AC", kinds{Op_al, Op_seg_rSI}, MemorySizeUInt8, flagRep | flagString},
	{Lodsw_AX_m16, "lodsw", "o16 AD", kinds{Op_ax, Op_seg_rSI}, MemorySizeUInt16, flagRep | flagString},
	{Lodsd_EAX_m32, "lodsd", "o32 AD", kinds{Op_eax, Op_seg_rSI}, MemorySizeUInt32, flagRep | flagString},
	{Lodsq_RAX_m64, "lodsq", "REX.W AD", kinds{Op_rax, Op_seg_rSI}, MemorySizeUInt64, flagRep | flagString},
	{Scasb_AL_m8, "scasb", "AE", kinds{Op_al, Op_es_rDI}, MemorySizeUInt8, flagRepeRepne | flagString},
	{Scasw_AX_m16, "scasw", "o16 AF", kinds{Op_ax, Op_es_rDI}, MemorySizeUInt16, flagRepeRepne | flagString},
	{Scasd_EAX_m32, "scasd", "o32 AF", kinds{Op_eax, Op_es_rDI}, MemorySizeUInt32, flagRepeRepne | flagString},
	{Scasq_RAX_m64, "scasq", "REX.W AF", kinds{Op_rax, Op_es_rDI}, MemorySizeUInt64, flagRepeRepne | flagString},
	{Mov_r8_imm8, "mov", "B0+rb ib", kinds{Op_r8_opcode, Op_imm8}, MemorySizeUnknown, 0},
	{Mov_r16_imm16, "mov", "o16 B8+rw iw", kinds{Op_r16_opcode, Op_imm16}, MemorySizeUnknown, 0},
	{Mov_r32_imm32, "mov", "o32 B8+rd id", kinds{Op_r32_opcode, Op_imm32}, MemorySizeUnknown, 0},
	{Mov_r64_imm64, "mov", "REX.W B8+ro io", kinds{Op_r64_opcode, Op_imm64}, MemorySizeUnknown, 0},
	{Rol_rm8_imm8, "rol", "C0 /0 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Rol_rm16_imm8, "rol", "o16 C1 /0 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Rol_rm32_imm8, "rol", "o32 C1 /0 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Rol_rm64_imm8, "rol", "REX.W C1 /0 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Rol_rm8_1, "rol", "D0 /0", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Rol_rm16_1, "rol", "o16 D1 /0", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Rol_rm32_1, "rol", "o32 D1 /0", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Rol_rm64_1, "rol", "REX.W D1 /0", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Rol_rm8_CL, "rol", "D2 /0", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Rol_rm16_CL, "rol", "o16 D3 /0", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Rol_rm32_CL, "rol", "o32 D3 /0", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Rol_rm64_CL, "rol", "REX.W D3 /0", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Ror_rm8_imm8, "ror", "C0 /1 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Ror_rm16_imm8, "ror", "o16 C1 /1 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Ror_rm32_imm8, "ror", "o32 C1 /1 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Ror_rm64_imm8, "ror", "REX.W C1 /1 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Ror_rm8_1, "ror", "D0 /1", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Ror_rm16_1, "ror", "o16 D1 /1", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Ror_rm32_1, "ror", "o32 D1 /1", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Ror_rm64_1, "ror", "REX.W D1 /1", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Ror_rm8_CL, "ror", "D2 /1", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Ror_rm16_CL, "ror", "o16 D3 /1", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Ror_rm32_CL, "ror", "o32 D3 /1", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Ror_rm64_CL, "ror", "REX.W D3 /1", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Rcl_rm8_imm8, "rcl", "C0 /2 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Rcl_rm16_imm8, "rcl", "o16 C1 /2 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Rcl_rm32_imm8, "rcl", "o32 C1 /2 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Rcl_rm64_imm8, "rcl", "REX.W C1 /2 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Rcl_rm8_1, "rcl", "D0 /2", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Rcl_rm16_1, "rcl", "o16 D1 /2", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Rcl_rm32_1, "rcl", "o32 D1 /2", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Rcl_rm64_1, "rcl", "REX.W D1 /2", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Rcl_rm8_CL, "rcl", "D2 /2", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Rcl_rm16_CL, "rcl", "o16 D3 /2", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Rcl_rm32_CL, "rcl", "o32 D3 /2", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Rcl_rm64_CL, "rcl", "REX.W D3 /2", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Rcr_rm8_imm8, "rcr", "C0 /3 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Rcr_rm16_imm8, "rcr", "o16 C1 /3 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Rcr_rm32_imm8, "rcr", "o32 C1 /3 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Rcr_rm64_imm8, "rcr", "REX.W C1 /3 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Rcr_rm8_1, "rcr", "D0 /3", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Rcr_rm16_1, "rcr", "o16 D1 /3", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Rcr_rm32_1, "rcr", "o32 D1 /3", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Rcr_rm64_1, "rcr", "REX.W D1 /3", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Rcr_rm8_CL, "rcr", "D2 /3", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Rcr_rm16_CL, "rcr", "o16 D3 /3", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Rcr_rm32_CL, "rcr", "o32 D3 /3", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Rcr_rm64_CL, "rcr", "REX.W D3 /3", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Shl_rm8_imm8, "shl", "C0 /4 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Shl_rm16_imm8, "shl", "o16 C1 /4 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Shl_rm32_imm8, "shl", "o32 C1 /4 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Shl_rm64_imm8, "shl", "REX.W C1 /4 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Shl_rm8_1, "shl", "D0 /4", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Shl_rm16_1, "shl", "o16 D1 /4", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Shl_rm32_1, "shl", "o32 D1 /4", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Shl_rm64_1, "shl", "REX.W D1 /4", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Shl_rm8_CL, "shl", "D2 /4", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Shl_rm16_CL, "shl", "o16 D3 /4", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Shl_rm32_CL, "shl", "o32 D3 /4", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Shl_rm64_CL, "shl", "REX.W D3 /4", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Shr_rm8_imm8, "shr", "C0 /5 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Shr_rm16_imm8, "shr", "o16 C1 /5 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Shr_rm32_imm8, "shr", "o32 C1 /5 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Shr_rm64_imm8, "shr", "REX.W C1 /5 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Shr_rm8_1, "shr", "D0 /5", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Shr_rm16_1, "shr", "o16 D1 /5", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Shr_rm32_1, "shr", "o32 D1 /5", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Shr_rm64_1, "shr", "REX.W D1 /5", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Shr_rm8_CL, "shr", "D2 /5", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Shr_rm16_CL, "shr", "o16 D3 /5", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Shr_rm32_CL, "shr", "o32 D3 /5", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Shr_rm64_CL, "shr", "REX.W D3 /5", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Sal_rm8_imm8, "sal", "C0 /6 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Sal_rm16_imm8, "sal", "o16 C1 /6 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Sal_rm32_imm8, "sal", "o32 C1 /6 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Sal_rm64_imm8, "sal", "REX.W C1 /6 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Sal_rm8_1, "sal", "D0 /6", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Sal_rm16_1, "sal", "o16 D1 /6", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Sal_rm32_1, "sal", "o32 D1 /6", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Sal_rm64_1, "sal", "REX.W D1 /6", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Sal_rm8_CL, "sal", "D2 /6", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Sal_rm16_CL, "sal", "o16 D3 /6", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Sal_rm32_CL, "sal", "o32 D3 /6", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Sal_rm64_CL, "sal", "REX.W D3 /6", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Sar_rm8_imm8, "sar", "C0 /7 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Sar_rm16_imm8, "sar", "o16 C1 /7 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Sar_rm32_imm8, "sar", "o32 C1 /7 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Sar_rm64_imm8, "sar", "REX.W C1 /7 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Sar_rm8_1, "sar", "D0 /7", kinds{Op_r8_or_mem, Op_imm8_const1}, MemorySizeUInt8, 0},
	{Sar_rm16_1, "sar", "o16 D1 /7", kinds{Op_r16_or_mem, Op_imm8_const1}, MemorySizeUInt16, 0},
	{Sar_rm32_1, "sar", "o32 D1 /7", kinds{Op_r32_or_mem, Op_imm8_const1}, MemorySizeUInt32, 0},
	{Sar_rm64_1, "sar", "REX.W D1 /7", kinds{Op_r64_or_mem, Op_imm8_const1}, MemorySizeUInt64, 0},
	{Sar_rm8_CL, "sar", "D2 /7", kinds{Op_r8_or_mem, Op_cl}, MemorySizeUInt8, 0},
	{Sar_rm16_CL, "sar", "o16 D3 /7", kinds{Op_r16_or_mem, Op_cl}, MemorySizeUInt16, 0},
	{Sar_rm32_CL, "sar", "o32 D3 /7", kinds{Op_r32_or_mem, Op_cl}, MemorySizeUInt32, 0},
	{Sar_rm64_CL, "sar", "REX.W D3 /7", kinds{Op_r64_or_mem, Op_cl}, MemorySizeUInt64, 0},
	{Retnw_imm16, "ret", "o16 F64 C2 iw", kinds{Op_imm16}, MemorySizeUnknown, flagRet | flagBnd},
	{Retnd_imm16, "ret", "o32 !64 C2 iw", kinds{Op_imm16}, MemorySizeUnknown, flagRet | flagBnd},
	{Retnq_imm16, "ret", "o64 only64 F64 C2 iw", kinds{Op_imm16}, MemorySizeUnknown, flagRet | flagBnd},
	{Retnw, "ret", "o16 F64 C3", kinds{}, MemorySizeUnknown, flagRet | flagBnd},
	{Retnd, "ret", "o32 !64 C3", kinds{}, MemorySizeUnknown, flagRet | flagBnd},
	{Retnq, "ret", "o64 only64 F64 C3", kinds{}, MemorySizeUnknown, flagRet | flagBnd},
	{Les_r16_m1616, "les", "o16 !64 C4 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeSegPtr16, 0},
	{Les_r32_m1632, "les", "o32 !64 C4 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeSegPtr32, 0},
	{Lds_r16_m1616, "lds", "o16 !64 C5 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeSegPtr16, 0},
	{Lds_r32_m1632, "lds", "o32 !64 C5 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeSegPtr32, 0},
	{Mov_rm8_imm8, "mov", "C6 /0 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, flagXreleaseNoLock},
	{Xabort_imm8, "xabort", "C6 F8 ib", kinds{Op_imm8}, MemorySizeUnknown, 0},
	{Mov_rm16_imm16, "mov", "o16 C7 /0 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, flagXreleaseNoLock},
	{Mov_rm32_imm32, "mov", "o32 C7 /0 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, flagXreleaseNoLock},
	{Mov_rm64_imm32, "mov", "REX.W C7 /0 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, flagXreleaseNoLock},
	{Xbegin_rel16, "xbegin", "o16 C7 F8 cw", kinds{Op_xbegin_2}, MemorySizeUnknown, 0},
	{Xbegin_rel32, "xbegin", "C7 F8 cd", kinds{Op_xbegin_4}, MemorySizeUnknown, 0},
	{Enterw_imm16_imm8, "enter", "o16 D64 C8 iw ib", kinds{Op_imm16, Op_imm8}, MemorySizeUnknown, 0},
	{Enterd_imm16_imm8, "enter", "o32 !64 C8 iw ib", kinds{Op_imm16, Op_imm8}, MemorySizeUnknown, 0},
	{Enterq_imm16_imm8, "enter", "o64 only64 D64 C8 iw ib", kinds{Op_imm16, Op_imm8}, MemorySizeUnknown, 0},
	{Leavew, "leave", "o16 D64 C9", kinds{}, MemorySizeUnknown, 0},
	{Leaved, "leave", "o32 !64 C9", kinds{}, MemorySizeUnknown, 0},
	{Leaveq, "leave", "o64 only64 D64 C9", kinds{}, MemorySizeUnknown, 0},
	{Retfw_imm16, "retf", "o16 CA iw", kinds{Op_imm16}, MemorySizeUnknown, flagRet | flagFar},
	{Retfd_imm16, "retf", "o32 CA iw", kinds{Op_imm16}, MemorySizeUnknown, flagRet | flagFar},
	{Retfq_imm16, "retf", "REX.W CA iw", kinds{Op_imm16}, MemorySizeUnknown, flagRet | flagFar},
	{Retfw, "retf", "o16 CB", kinds{}, MemorySizeUnknown, flagRet | flagFar},
	{Retfd, "retf", "o32 CB", kinds{}, MemorySizeUnknown, flagRet | flagFar},
	{Retfq, "retf", "REX.W CB", kinds{}, MemorySizeUnknown, flagRet | flagFar},
	{Int3, "int3", "CC", kinds{}, MemorySizeUnknown, 0},
	{Int_imm8, "int", "CD ib", kinds{Op_imm8}, MemorySizeUnknown, 0},
	{Into, "into", "!64 CE", kinds{}, MemorySizeUnknown, 0},
	{Iretw, "iret", "o16 CF", kinds{}, MemorySizeUnknown, 0},
	{Iretd, "iretd", "o32 CF", kinds{}, MemorySizeUnknown, 0},
	{Iretq, "iretq", "REX.W CF", kinds{}, MemorySizeUnknown, 0},
	{Aam_imm8, "aam", "!64 D4 ib", kinds{Op_imm8}, MemorySizeUnknown, 0},
	{Aad_imm8, "aad", "!64 D5 ib", kinds{Op_imm8}, MemorySizeUnknown, 0},
	{Salc, "salc", "!64 D6", kinds{}, MemorySizeUnknown, 0},
	{Xlat_m8, "xlatb", "D7", kinds{Op_seg_rBX_al}, MemorySizeUInt8, 0},
	{Loopne_rel8_16_CX, "loopne", "o16 a16 F64 E0 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loopne_rel8_32_CX, "loopne", "o32 a16 !64 E0 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Loopne_rel8_16_ECX, "loopne", "o16 a32 F64 E0 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loopne_rel8_32_ECX, "loopne", "o32 a32 !64 E0 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Loopne_rel8_64_ECX, "loopne", "o64 a32 only64 F64 E0 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Loopne_rel8_16_RCX, "loopne", "o16 a64 F64 E0 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loopne_rel8_64_RCX, "loopne", "o64 a64 only64 F64 E0 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_16_CX, "loope", "o16 a16 F64 E1 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_32_CX, "loope", "o32 a16 !64 E1 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_16_ECX, "loope", "o16 a32 F64 E1 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_32_ECX, "loope", "o32 a32 !64 E1 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_64_ECX, "loope", "o64 a32 only64 F64 E1 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_16_RCX, "loope", "o16 a64 F64 E1 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loope_rel8_64_RCX, "loope", "o64 a64 only64 F64 E1 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_16_CX, "loop", "o16 a16 F64 E2 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_32_CX, "loop", "o32 a16 !64 E2 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_16_ECX, "loop", "o16 a32 F64 E2 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_32_ECX, "loop", "o32 a32 !64 E2 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_64_ECX, "loop", "o64 a32 only64 F64 E2 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_16_RCX, "loop", "o16 a64 F64 E2 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Loop_rel8_64_RCX, "loop", "o64 a64 only64 F64 E2 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Jcxz_rel8_16, "jcxz", "o16 a16 F64 E3 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Jcxz_rel8_32, "jcxz", "o32 a16 !64 E3 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Jecxz_rel8_16, "jecxz", "o16 a32 F64 E3 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Jecxz_rel8_32, "jecxz", "o32 a32 !64 E3 cb", kinds{Op_br32_1}, MemorySizeUnknown, flagLoop},
	{Jecxz_rel8_64, "jecxz", "o64 a32 only64 F64 E3 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{Jrcxz_rel8_16, "jrcxz", "o16 a64 F64 E3 cb", kinds{Op_br16_1}, MemorySizeUnknown, flagLoop},
	{Jrcxz_rel8_64, "jrcxz", "o64 a64 only64 F64 E3 cb", kinds{Op_br64_1}, MemorySizeUnknown, flagLoop},
	{In_AL_imm8, "in", "E4 ib", kinds{Op_al, Op_imm8}, MemorySizeUnknown, 0},
	{In_AX_imm8, "in", "o16 E5 ib", kinds{Op_ax, Op_imm8}, MemorySizeUnknown, 0},
	{In_EAX_imm8, "in", "E5 ib", kinds{Op_eax, Op_imm8}, MemorySizeUnknown, 0},
	{Out_imm8_AL, "out", "E6 ib", kinds{Op_imm8, Op_al}, MemorySizeUnknown, 0},
	{Out_imm8_AX, "out", "o16 E7 ib", kinds{Op_imm8, Op_ax}, MemorySizeUnknown, 0},
	{Out_imm8_EAX, "out", "E7 ib", kinds{Op_imm8, Op_eax}, MemorySizeUnknown, 0},
	{Call_rel16, "call", "o16 F64 E8 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagCall | flagBnd},
	{Call_rel32_32, "call", "o32 !64 E8 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagCall | flagBnd},
	{Call_rel32_64, "call", "o64 only64 F64 E8 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagCall | flagBnd},
	{Jmp_rel16, "jmp", "o16 F64 E9 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJmp | flagBnd},
	{Jmp_rel32_32, "jmp", "o32 !64 E9 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJmp | flagBnd},
	{Jmp_rel32_64, "jmp", "o64 only64 F64 E9 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJmp | flagBnd},
	{Jmp_ptr1616, "jmp", "o16 !64 EA cd", kinds{Op_farbr2_2}, MemorySizeUnknown, flagJmp | flagFar},
	{Jmp_ptr1632, "jmp", "o32 !64 EA cp", kinds{Op_farbr4_2}, MemorySizeUnknown, flagJmp | flagFar},
	{Jmp_rel8_16, "jmp", "o16 F64 EB cb", kinds{Op_br16_1}, MemorySizeUnknown, flagJmp | flagBnd},
	{Jmp_rel8_32, "jmp", "o32 !64 EB cb", kinds{Op_br32_1}, MemorySizeUnknown, flagJmp | flagBnd},
	{Jmp_rel8_64, "jmp", "o64 only64 F64 EB cb", kinds{Op_br64_1}, MemorySizeUnknown, flagJmp | flagBnd},
	{In_AL_DX, "in", "EC", kinds{Op_al, Op_dx}, MemorySizeUnknown, 0},
	{In_AX_DX, "in", "o16 ED", kinds{Op_ax, Op_dx}, MemorySizeUnknown, 0},
	{In_EAX_DX, "in", "ED", kinds{Op_eax, Op_dx}, MemorySizeUnknown, 0},
	{Out_DX_AL, "out", "EE", kinds{Op_dx, Op_al}, MemorySizeUnknown, 0},
	{Out_DX_AX, "out", "o16 EF", kinds{Op_dx, Op_ax}, MemorySizeUnknown, 0},
	{Out_DX_EAX, "out", "EF", kinds{Op_dx, Op_eax}, MemorySizeUnknown, 0},
	{Int1, "int1", "F1", kinds{}, MemorySizeUnknown, 0},
	{Hlt, "hlt", "F4", kinds{}, MemorySizeUnknown, 0},
	{Cmc, "cmc", "F5", kinds{}, MemorySizeUnknown, 0},
	{Test_rm8_imm8, "test", "F6 /0 ib", kinds{Op_r8_or_mem, Op_imm8}, MemorySizeUInt8, 0},
	{Test_rm16_imm16, "test", "o16 F7 /0 iw", kinds{Op_r16_or_mem, Op_imm16}, MemorySizeUInt16, 0},
	{Test_rm32_imm32, "test", "o32 F7 /0 id", kinds{Op_r32_or_mem, Op_imm32}, MemorySizeUInt32, 0},
	{Test_rm64_imm32, "test", "REX.W F7 /0 id", kinds{Op_r64_or_mem, Op_imm32sex64}, MemorySizeUInt64, 0},
	{Not_rm8, "not", "F6 /2", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Not_rm16, "not", "o16 F7 /2", kinds{Op_r16_or_mem}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Not_rm32, "not", "o32 F7 /2", kinds{Op_r32_or_mem}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Not_rm64, "not", "REX.W F7 /2", kinds{Op_r64_or_mem}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Neg_rm8, "neg", "F6 /3", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Neg_rm16, "neg", "o16 F7 /3", kinds{Op_r16_or_mem}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Neg_rm32, "neg", "o32 F7 /3", kinds{Op_r32_or_mem}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Neg_rm64, "neg", "REX.W F7 /3", kinds{Op_r64_or_mem}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Mul_rm8, "mul", "F6 /4", kinds{Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Mul_rm16, "mul", "o16 F7 /4", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Mul_rm32, "mul", "o32 F7 /4", kinds{Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Mul_rm64, "mul", "REX.W F7 /4", kinds{Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Imul_rm8, "imul", "F6 /5", kinds{Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Imul_rm16, "imul", "o16 F7 /5", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Imul_rm32, "imul", "o32 F7 /5", kinds{Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Imul_rm64, "imul", "REX.W F7 /5", kinds{Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Div_rm8, "div", "F6 /6", kinds{Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Div_rm16, "div", "o16 F7 /6", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Div_rm32, "div", "o32 F7 /6", kinds{Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Div_rm64, "div", "REX.W F7 /6", kinds{Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Idiv_rm8, "idiv", "F6 /7", kinds{Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Idiv_rm16, "idiv", "o16 F7 /7", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Idiv_rm32, "idiv", "o32 F7 /7", kinds{Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Idiv_rm64, "idiv", "REX.W F7 /7", kinds{Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Clc, "clc", "F8", kinds{}, MemorySizeUnknown, 0},
	{Stc, "stc", "F9", kinds{}, MemorySizeUnknown, 0},
	{Cli, "cli", "FA", kinds{}, MemorySizeUnknown, 0},
	{Sti, "sti", "FB", kinds{}, MemorySizeUnknown, 0},
	{Cld, "cld", "FC", kinds{}, MemorySizeUnknown, 0},
	{Std, "std", "FD", kinds{}, MemorySizeUnknown, 0},
	{Inc_rm8, "inc", "FE /0", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Inc_rm16, "inc", "o16 FF /0", kinds{Op_r16_or_mem}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Inc_rm32, "inc", "o32 FF /0", kinds{Op_r32_or_mem}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Inc_rm64, "inc", "REX.W FF /0", kinds{Op_r64_or_mem}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Dec_rm8, "dec", "FE /1", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Dec_rm16, "dec", "o16 FF /1", kinds{Op_r16_or_mem}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Dec_rm32, "dec", "o32 FF /1", kinds{Op_r32_or_mem}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Dec_rm64, "dec", "REX.W FF /1", kinds{Op_r64_or_mem}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Call_rm16, "call", "o16 F64 FF /2", kinds{Op_r16_or_mem}, MemorySizeUInt16, flagCall | flagBnd | flagNotrack},
	{Call_rm32, "call", "o32 !64 FF /2", kinds{Op_r32_or_mem}, MemorySizeUInt32, flagCall | flagBnd | flagNotrack},
	{Call_rm64, "call", "o64 only64 F64 FF /2", kinds{Op_r64_or_mem}, MemorySizeUInt64, flagCall | flagBnd | flagNotrack},
	{Call_m1616, "call", "o16 FF /3", kinds{Op_mem}, MemorySizeSegPtr16, flagCall | flagFar},
	{Call_m1632, "call", "o32 FF /3", kinds{Op_mem}, MemorySizeSegPtr32, flagCall | flagFar},
	{Call_m1664, "call", "REX.W FF /3", kinds{Op_mem}, MemorySizeSegPtr64, flagCall | flagFar},
	{Jmp_rm16, "jmp", "o16 F64 FF /4", kinds{Op_r16_or_mem}, MemorySizeUInt16, flagJmp | flagBnd | flagNotrack},
	{Jmp_rm32, "jmp", "o32 !64 FF /4", kinds{Op_r32_or_mem}, MemorySizeUInt32, flagJmp | flagBnd | flagNotrack},
	{Jmp_rm64, "jmp", "o64 only64 F64 FF /4", kinds{Op_r64_or_mem}, MemorySizeUInt64, flagJmp | flagBnd | flagNotrack},
	{Jmp_m1616, "jmp", "o16 FF /5", kinds{Op_mem}, MemorySizeSegPtr16, flagJmp | flagFar},
	{Jmp_m1632, "jmp", "o32 FF /5", kinds{Op_mem}, MemorySizeSegPtr32, flagJmp | flagFar},
	{Jmp_m1664, "jmp", "REX.W FF /5", kinds{Op_mem}, MemorySizeSegPtr64, flagJmp | flagFar},
	{Push_rm16, "push", "o16 D64 FF /6", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Push_rm32, "push", "o32 !64 FF /6", kinds{Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Push_rm64, "push", "o64 only64 D64 FF /6", kinds{Op_r64_or_mem}, MemorySizeUInt64, 0},
}
