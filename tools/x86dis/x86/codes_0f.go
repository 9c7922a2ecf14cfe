// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// twoByteForms describes the system and general-purpose instructions in the 0F maps.
var twoByteForms = [...]form{
	{Sldt_rm16, "sldt", "o16 0F 00 /0", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Sldt_r32m16, "sldt", "o32 0F 00 /0", kinds{Op_r32_or_mem}, MemorySizeUInt16, 0},
	{Sldt_r64m16, "sldt", "REX.W 0F 00 /0", kinds{Op_r64_or_mem}, MemorySizeUInt16, 0},
	{Str_rm16, "str", "o16 0F 00 /1", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Str_r32m16, "str", "o32 0F 00 /1", kinds{Op_r32_or_mem}, MemorySizeUInt16, 0},
	{Str_r64m16, "str", "REX.W 0F 00 /1", kinds{Op_r64_or_mem}, MemorySizeUInt16, 0},
	{Lldt_rm16, "lldt", "0F 00 /2", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Ltr_rm16, "ltr", "0F 00 /3", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Verr_rm16, "verr", "0F 00 /4", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Verw_rm16, "verw", "0F 00 /5", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Sgdt_m1632, "sgdt", "!64 0F 01 /0", kinds{Op_mem}, MemorySizeFword6, 0},
	{Sgdt_m1664, "sgdt", "only64 0F 01 /0", kinds{Op_mem}, MemorySizeFword10, 0},
	{Sidt_m1632, "sidt", "!64 0F 01 /1", kinds{Op_mem}, MemorySizeFword6, 0},
	{Sidt_m1664, "sidt", "only64 0F 01 /1", kinds{Op_mem}, MemorySizeFword10, 0},
	{Lgdt_m1632, "lgdt", "!64 0F 01 /2", kinds{Op_mem}, MemorySizeFword6, 0},
	{Lgdt_m1664, "lgdt", "only64 0F 01 /2", kinds{Op_mem}, MemorySizeFword10, 0},
	{Lidt_m1632, "lidt", "!64 0F 01 /3", kinds{Op_mem}, MemorySizeFword6, 0},
	{Lidt_m1664, "lidt", "only64 0F 01 /3", kinds{Op_mem}, MemorySizeFword10, 0},
	{Smsw_rm16, "smsw", "o16 0F 01 /4", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Smsw_r32m16, "smsw", "o32 0F 01 /4", kinds{Op_r32_or_mem}, MemorySizeUInt16, 0},
	{Smsw_r64m16, "smsw", "REX.W 0F 01 /4", kinds{Op_r64_or_mem}, MemorySizeUInt16, 0},
	{Lmsw_rm16, "lmsw", "0F 01 /6", kinds{Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Invlpg_m, "invlpg", "0F 01 /7", kinds{Op_mem}, MemorySizeUnknown, 0},
	{Vmcall, "vmcall", "0F 01 C1", kinds{}, MemorySizeUnknown, 0},
	{Vmlaunch, "vmlaunch", "0F 01 C2", kinds{}, MemorySizeUnknown, 0},
	{Vmresume, "vmresume", "0F 01 C3", kinds{}, MemorySizeUnknown, 0},
	{Vmxoff, "vmxoff", "0F 01 C4", kinds{}, MemorySizeUnknown, 0},
	{Monitor, "monitor", "0F 01 C8", kinds{}, MemorySizeUnknown, 0},
	{Mwait, "mwait", "0F 01 C9", kinds{}, MemorySizeUnknown, 0},
	{Clac, "clac", "0F 01 CA", kinds{}, MemorySizeUnknown, 0},
	{Stac, "stac", "0F 01 CB", kinds{}, MemorySizeUnknown, 0},
	{Encls, "encls", "0F 01 CF", kinds{}, MemorySizeUnknown, 0},
	{Xgetbv, "xgetbv", "0F 01 D0", kinds{}, MemorySizeUnknown, 0},
	{Xsetbv, "xsetbv", "0F 01 D1", kinds{}, MemorySizeUnknown, 0},
	{Vmfunc, "vmfunc", "0F 01 D4", kinds{}, MemorySizeUnknown, 0},
	{Xend, "xend", "0F 01 D5", kinds{}, MemorySizeUnknown, 0},
	{Xtest, "xtest", "0F 01 D6", kinds{}, MemorySizeUnknown, 0},
	{Enclu, "enclu", "0F 01 D7", kinds{}, MemorySizeUnknown, 0},
	{Serialize, "serialize", "0F 01 E8", kinds{}, MemorySizeUnknown, 0},
	{Rdpkru, "rdpkru", "0F 01 EE", kinds{}, MemorySizeUnknown, 0},
	{Wrpkru, "wrpkru", "0F 01 EF", kinds{}, MemorySizeUnknown, 0},
	{Rdtscp, "rdtscp", "0F 01 F9", kinds{}, MemorySizeUnknown, 0},
	{Monitorx, "monitorx", "0F 01 FA", kinds{}, MemorySizeUnknown, 0},
	{Mwaitx, "mwaitx", "0F 01 FB", kinds{}, MemorySizeUnknown, 0},
	{Clzero, "clzero", "0F 01 FC", kinds{}, MemorySizeUnknown, 0},
	{Swapgs, "swapgs", "only64 0F 01 F8", kinds{}, MemorySizeUnknown, 0},
	{Lar_r16_rm16, "lar", "o16 0F 02 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Lar_r32_rm32, "lar", "o32 0F 02 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Lar_r64_rm64, "lar", "REX.W 0F 02 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Lsl_r16_rm16, "lsl", "o16 0F 03 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Lsl_r32_rm32, "lsl", "o32 0F 03 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Lsl_r64_rm64, "lsl", "REX.W 0F 03 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Loadall286, "loadall", "!64 +loadall286 0F 05", kinds{}, MemorySizeUnknown, 0},
	{Syscall, "syscall", "0F 05", kinds{}, MemorySizeUnknown, 0},
	{Clts, "clts", "0F 06", kinds{}, MemorySizeUnknown, 0},
	{Loadall386, "loadall", "!64 +loadall386 0F 07", kinds{}, MemorySizeUnknown, 0},
	{Sysretd, "sysret", "0F 07", kinds{}, MemorySizeUnknown, 0},
	{Sysretq, "sysretq", "REX.W 0F 07", kinds{}, MemorySizeUnknown, 0},
	{Invd, "invd", "0F 08", kinds{}, MemorySizeUnknown, 0},
	{Wbinvd, "wbinvd", "0F 09", kinds{}, MemorySizeUnknown, 0},
	{Wbnoinvd, "wbnoinvd", "F3 -nowbnoinvd 0F 09", kinds{}, MemorySizeUnknown, 0},
	{Cl1invmb, "cl1invmb", "+cl1invmb 0F 0A", kinds{}, MemorySizeUnknown, 0},
	{Ud2, "ud2", "0F 0B", kinds{}, MemorySizeUnknown, 0},
	{Prefetch_m8, "prefetch", "0F 0D /0", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Prefetchw_m8, "prefetchw", "0F 0D /1", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Prefetchwt1_m8, "prefetchwt1", "0F 0D /2", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Femms, "femms", "0F 0E", kinds{}, MemorySizeUnknown, 0},
	{Prefetchnta_m8, "prefetchnta", "0F 18 /0", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Prefetcht0_m8, "prefetcht0", "0F 18 /1", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Prefetcht1_m8, "prefetcht1", "0F 18 /2", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Prefetcht2_m8, "prefetcht2", "0F 18 /3", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Bndldx_bnd_mib, "bndldx", "NP +mpx 0F 1A /r", kinds{Op_bnd_reg, Op_mem_mpx}, MemorySizeUnknown, 0},
	{Bndmov_bnd_bndm64, "bndmov", "66 +mpx !64 0F 1A /r", kinds{Op_bnd_reg, Op_bnd_or_mem_mpx}, MemorySizeBnd32, 0},
	{Bndmov_bnd_bndm128, "bndmov", "66 +mpx only64 0F 1A /r", kinds{Op_bnd_reg, Op_bnd_or_mem_mpx}, MemorySizeBnd64, 0},
	{Bndcl_bnd_rm32, "bndcl", "F3 +mpx !64 0F 1A /r", kinds{Op_bnd_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Bndcl_bnd_rm64, "bndcl", "F3 +mpx only64 0F 1A /r", kinds{Op_bnd_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Bndcu_bnd_rm32, "bndcu", "F2 +mpx !64 0F 1A /r", kinds{Op_bnd_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Bndcu_bnd_rm64, "bndcu", "F2 +mpx only64 0F 1A /r", kinds{Op_bnd_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Bndstx_mib_bnd, "bndstx", "NP +mpx 0F 1B /r", kinds{Op_mem_mpx, Op_bnd_reg}, MemorySizeUnknown, 0},
	{Bndmov_bndm64_bnd, "bndmov", "66 +mpx !64 0F 1B /r", kinds{Op_bnd_or_mem_mpx, Op_bnd_reg}, MemorySizeBnd32, 0},
	{Bndmov_bndm128_bnd, "bndmov", "66 +mpx only64 0F 1B /r", kinds{Op_bnd_or_mem_mpx, Op_bnd_reg}, MemorySizeBnd64, 0},
	{Bndmk_bnd_m32, "bndmk", "F3 +mpx !64 0F 1B /r", kinds{Op_bnd_reg, Op_mem}, MemorySizeUnknown, 0},
	{Bndmk_bnd_m64, "bndmk", "F3 +mpx only64 0F 1B /r", kinds{Op_bnd_reg, Op_mem}, MemorySizeUnknown, 0},
	{Bndcn_bnd_rm32, "bndcn", "F2 +mpx !64 0F 1B /r", kinds{Op_bnd_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Bndcn_bnd_rm64, "bndcn", "F2 +mpx only64 0F 1B /r", kinds{Op_bnd_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Rdsspd_r32, "rdsspd", "F3 0F 1E 11:001:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Rdsspq_r64, "rdsspq", "F3 REX.W 0F 1E 11:001:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Endbr64, "endbr64", "F3 0F 1E FA", kinds{}, MemorySizeUnknown, 0},
	{Endbr32, "endbr32", "F3 0F 1E FB", kinds{}, MemorySizeUnknown, 0},
	{Nop_rm16, "nop", "o16 0F 1F /0", kinds{Op_r16_or_mem}, MemorySizeUnknown, 0},
	{Nop_rm32, "nop", "o32 0F 1F /0", kinds{Op_r32_or_mem}, MemorySizeUnknown, 0},
	{Nop_rm64, "nop", "REX.W 0F 1F /0", kinds{Op_r64_or_mem}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F0D, "nop", "o16 0F 0D /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F0D, "nop", "o32 0F 0D /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F0D, "nop", "REX.W 0F 0D /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F18, "nop", "o16 0F 18 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F18, "nop", "o32 0F 18 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F18, "nop", "REX.W 0F 18 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F19, "nop", "o16 0F 19 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F19, "nop", "o32 0F 19 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F19, "nop", "REX.W 0F 19 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F1A, "nop", "o16 0F 1A /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F1A, "nop", "o32 0F 1A /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F1A, "nop", "REX.W 0F 1A /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F1B, "nop", "o16 0F 1B /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F1B, "nop", "o32 0F 1B /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F1B, "nop", "REX.W 0F 1B /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F1C, "nop", "o16 0F 1C /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F1C, "nop", "o32 0F 1C /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F1C, "nop", "REX.W 0F 1C /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F1D, "nop", "o16 0F 1D /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F1D, "nop", "o32 0F 1D /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F1D, "nop", "REX.W 0F 1D /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F1E, "nop", "o16 0F 1E /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F1E, "nop", "o32 0F 1E /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F1E, "nop", "REX.W 0F 1E /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm16_r16_0F1F, "nop", "o16 0F 1F /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm32_r32_0F1F, "nop", "o32 0F 1F /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUnknown, 0},
	{Reservednop_rm64_r64_0F1F, "nop", "REX.W 0F 1F /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUnknown, 0},
	{Mov_r32_cr, "mov", "!64 0F 20 /r", kinds{Op_r32_rm, Op_cr_reg}, MemorySizeUnknown, 0},
	{Mov_r64_cr, "mov", "only64 0F 20 /r", kinds{Op_r64_rm, Op_cr_reg}, MemorySizeUnknown, 0},
	{Mov_r32_dr, "mov", "!64 0F 21 /r", kinds{Op_r32_rm, Op_dr_reg}, MemorySizeUnknown, 0},
	{Mov_r64_dr, "mov", "only64 0F 21 /r", kinds{Op_r64_rm, Op_dr_reg}, MemorySizeUnknown, 0},
	{Mov_cr_r32, "mov", "!64 0F 22 /r", kinds{Op_cr_reg, Op_r32_rm}, MemorySizeUnknown, 0},
	{Mov_cr_r64, "mov", "only64 0F 22 /r", kinds{Op_cr_reg, Op_r64_rm}, MemorySizeUnknown, 0},
	{Mov_dr_r32, "mov", "!64 0F 23 /r", kinds{Op_dr_reg, Op_r32_rm}, MemorySizeUnknown, 0},
	{Mov_dr_r64, "mov", "only64 0F 23 /r", kinds{Op_dr_reg, Op_r64_rm}, MemorySizeUnknown, 0},
	{Mov_r32_tr, "mov", "!64 +movtr 0F 24 /r", kinds{Op_r32_rm, Op_tr_reg}, MemorySizeUnknown, 0},
	{Mov_tr_r32, "mov", "!64 +movtr 0F 26 /r", kinds{Op_tr_reg, Op_r32_rm}, MemorySizeUnknown, 0},
	{Umov_rm8_r8, "umov", "!64 +umov 0F 10 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, 0},
	{Umov_rm16_r16, "umov", "o16 !64 +umov 0F 11 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Umov_rm32_r32, "umov", "o32 !64 +umov 0F 11 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Umov_r8_rm8, "umov", "!64 +umov 0F 12 /r", kinds{Op_r8_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Umov_r16_rm16, "umov", "o16 !64 +umov 0F 13 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Umov_r32_rm32, "umov", "o32 !64 +umov 0F 13 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Wrmsr, "wrmsr", "0F 30", kinds{}, MemorySizeUnknown, 0},
	{Rdtsc, "rdtsc", "0F 31", kinds{}, MemorySizeUnknown, 0},
	{Rdmsr, "rdmsr", "0F 32", kinds{}, MemorySizeUnknown, 0},
	{Rdpmc, "rdpmc", "0F 33", kinds{}, MemorySizeUnknown, 0},
	{Sysenter, "sysenter", "0F 34", kinds{}, MemorySizeUnknown, 0},
	{Getsec, "getsec", "0F 37", kinds{}, MemorySizeUnknown, 0},
	{Sysexitd, "sysexit", "0F 35", kinds{}, MemorySizeUnknown, 0},
	{Sysexitq, "sysexitq", "REX.W 0F 35", kinds{}, MemorySizeUnknown, 0},
	{Cmovo_r16_rm16, "cmovo", "o16 0F 40 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovo_r32_rm32, "cmovo", "o32 0F 40 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovo_r64_rm64, "cmovo", "REX.W 0F 40 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovno_r16_rm16, "cmovno", "o16 0F 41 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovno_r32_rm32, "cmovno", "o32 0F 41 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovno_r64_rm64, "cmovno", "REX.W 0F 41 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovb_r16_rm16, "cmovb", "o16 0F 42 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovb_r32_rm32, "cmovb", "o32 0F 42 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovb_r64_rm64, "cmovb", "REX.W 0F 42 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovae_r16_rm16, "cmovae", "o16 0F 43 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovae_r32_rm32, "cmovae", "o32 0F 43 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovae_r64_rm64, "cmovae", "REX.W 0F 43 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmove_r16_rm16, "cmove", "o16 0F 44 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmove_r32_rm32, "cmove", "o32 0F 44 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmove_r64_rm64, "cmove", "REX.W 0F 44 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovne_r16_rm16, "cmovne", "o16 0F 45 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovne_r32_rm32, "cmovne", "o32 0F 45 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovne_r64_rm64, "cmovne", "REX.W 0F 45 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovbe_r16_rm16, "cmovbe", "o16 0F 46 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovbe_r32_rm32, "cmovbe", "o32 0F 46 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovbe_r64_rm64, "cmovbe", "REX.W 0F 46 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmova_r16_rm16, "cmova", "o16 0F 47 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmova_r32_rm32, "cmova", "o32 0F 47 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmova_r64_rm64, "cmova", "REX.W 0F 47 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovs_r16_rm16, "cmovs", "o16 0F 48 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovs_r32_rm32, "cmovs", "o32 0F 48 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovs_r64_rm64, "cmovs", "REX.W 0F 48 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovns_r16_rm16, "cmovns", "o16 0F 49 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovns_r32_rm32, "cmovns", "o32 0F 49 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovns_r64_rm64, "cmovns", "REX.W 0F 49 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovp_r16_rm16, "cmovp", "o16 0F 4A /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovp_r32_rm32, "cmovp", "o32 0F 4A /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovp_r64_rm64, "cmovp", "REX.W 0F 4A /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovnp_r16_rm16, "cmovnp", "o16 0F 4B /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovnp_r32_rm32, "cmovnp", "o32 0F 4B /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovnp_r64_rm64, "cmovnp", "REX.W 0F 4B /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovl_r16_rm16, "cmovl", "o16 0F 4C /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovl_r32_rm32, "cmovl", "o32 0F 4C /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovl_r64_rm64, "cmovl", "REX.W 0F 4C /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovge_r16_rm16, "cmovge", "o16 0F 4D /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovge_r32_rm32, "cmovge", "o32 0F 4D /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovge_r64_rm64, "cmovge", "REX.W 0F 4D /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovle_r16_rm16, "cmovle", "o16 0F 4E /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovle_r32_rm32, "cmovle", "o32 0F 4E /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovle_r64_rm64, "cmovle", "REX.W 0F 4E /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Cmovg_r16_rm16, "cmovg", "o16 0F 4F /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, flagCC},
	{Cmovg_r32_rm32, "cmovg", "o32 0F 4F /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, flagCC},
	{Cmovg_r64_rm64, "cmovg", "REX.W 0F 4F /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, flagCC},
	{Jo_rel16, "jo", "o16 F64 0F 80 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jo_rel32_32, "jo", "o32 !64 0F 80 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jo_rel32_64, "jo", "o64 only64 F64 0F 80 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jno_rel16, "jno", "o16 F64 0F 81 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jno_rel32_32, "jno", "o32 !64 0F 81 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jno_rel32_64, "jno", "o64 only64 F64 0F 81 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jb_rel16, "jb", "o16 F64 0F 82 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jb_rel32_32, "jb", "o32 !64 0F 82 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jb_rel32_64, "jb", "o64 only64 F64 0F 82 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jae_rel16, "jae", "o16 F64 0F 83 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jae_rel32_32, "jae", "o32 !64 0F 83 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jae_rel32_64, "jae", "o64 only64 F64 0F 83 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Je_rel16, "je", "o16 F64 0F 84 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Je_rel32_32, "je", "o32 !64 0F 84 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Je_rel32_64, "je", "o64 only64 F64 0F 84 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jne_rel16, "jne", "o16 F64 0F 85 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jne_rel32_32, "jne", "o32 !64 0F 85 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jne_rel32_64, "jne", "o64 only64 F64 0F 85 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jbe_rel16, "jbe", "o16 F64 0F 86 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jbe_rel32_32, "jbe", "o32 !64 0F 86 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jbe_rel32_64, "jbe", "o64 only64 F64 0F 86 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Ja_rel16, "ja", "o16 F64 0F 87 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Ja_rel32_32, "ja", "o32 !64 0F 87 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Ja_rel32_64, "ja", "o64 only64 F64 0F 87 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Js_rel16, "js", "o16 F64 0F 88 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Js_rel32_32, "js", "o32 !64 0F 88 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Js_rel32_64, "js", "o64 only64 F64 0F 88 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jns_rel16, "jns", "o16 F64 0F 89 cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jns_rel32_32, "jns", "o32 !64 0F 89 cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jns_rel32_64, "jns", "o64 only64 F64 0F 89 cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jp_rel16, "jp", "o16 F64 0F 8A cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jp_rel32_32, "jp", "o32 !64 0F 8A cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jp_rel32_64, "jp", "o64 only64 F64 0F 8A cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jnp_rel16, "jnp", "o16 F64 0F 8B cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jnp_rel32_32, "jnp", "o32 !64 0F 8B cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jnp_rel32_64, "jnp", "o64 only64 F64 0F 8B cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jl_rel16, "jl", "o16 F64 0F 8C cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jl_rel32_32, "jl", "o32 !64 0F 8C cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jl_rel32_64, "jl", "o64 only64 F64 0F 8C cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jge_rel16, "jge", "o16 F64 0F 8D cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jge_rel32_32, "jge", "o32 !64 0F 8D cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jge_rel32_64, "jge", "o64 only64 F64 0F 8D cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jle_rel16, "jle", "o16 F64 0F 8E cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jle_rel32_32, "jle", "o32 !64 0F 8E cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jle_rel32_64, "jle", "o64 only64 F64 0F 8E cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jg_rel16, "jg", "o16 F64 0F 8F cw", kinds{Op_br16_2}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jg_rel32_32, "jg", "o32 !64 0F 8F cd", kinds{Op_br32_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Jg_rel32_64, "jg", "o64 only64 F64 0F 8F cd", kinds{Op_br64_4}, MemorySizeUnknown, flagJcc | flagCC | flagBnd | flagJccHint},
	{Seto_rm8, "seto", "0F 90 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setno_rm8, "setno", "0F 91 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setb_rm8, "setb", "0F 92 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setae_rm8, "setae", "0F 93 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Sete_rm8, "sete", "0F 94 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setne_rm8, "setne", "0F 95 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setbe_rm8, "setbe", "0F 96 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Seta_rm8, "seta", "0F 97 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Sets_rm8, "sets", "0F 98 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setns_rm8, "setns", "0F 99 /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setp_rm8, "setp", "0F 9A /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setnp_rm8, "setnp", "0F 9B /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setl_rm8, "setl", "0F 9C /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setge_rm8, "setge", "0F 9D /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setle_rm8, "setle", "0F 9E /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Setg_rm8, "setg", "0F 9F /r", kinds{Op_r8_or_mem}, MemorySizeUInt8, flagCC},
	{Pushw_FS, "push", "o16 D64 0F A0", kinds{Op_fs}, MemorySizeUnknown, 0},
	{Pushd_FS, "push", "o32 !64 0F A0", kinds{Op_fs}, MemorySizeUnknown, 0},
	{Pushq_FS, "push", "o64 only64 D64 0F A0", kinds{Op_fs}, MemorySizeUnknown, 0},
	{Popw_FS, "pop", "o16 D64 0F A1", kinds{Op_fs}, MemorySizeUnknown, 0},
	{Popd_FS, "pop", "o32 !64 0F A1", kinds{Op_fs}, MemorySizeUnknown, 0},
	{Popq_FS, "pop", "o64 only64 D64 0F A1", kinds{Op_fs}, MemorySizeUnknown, 0},
	{Pushw_GS, "push", "o16 D64 0F A8", kinds{Op_gs}, MemorySizeUnknown, 0},
	{Pushd_GS, "push", "o32 !64 0F A8", kinds{Op_gs}, MemorySizeUnknown, 0},
	{Pushq_GS, "push", "o64 only64 D64 0F A8", kinds{Op_gs}, MemorySizeUnknown, 0},
	{Popw_GS, "pop", "o16 D64 0F A9", kinds{Op_gs}, MemorySizeUnknown, 0},
	{Popd_GS, "pop", "o32 !64 0F A9", kinds{Op_gs}, MemorySizeUnknown, 0},
	{Popq_GS, "pop", "o64 only64 D64 0F A9", kinds{Op_gs}, MemorySizeUnknown, 0},
	{Cpuid, "cpuid", "0F A2", kinds{}, MemorySizeUnknown, 0},
	{Rsm, "rsm", "0F AA", kinds{}, MemorySizeUnknown, 0},
	{Bt_rm16_r16, "bt", "o16 0F A3 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Bt_rm32_r32, "bt", "o32 0F A3 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Bt_rm64_r64, "bt", "REX.W 0F A3 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, 0},
	{Bts_rm16_r16, "bts", "o16 0F AB /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Bts_rm32_r32, "bts", "o32 0F AB /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Bts_rm64_r64, "bts", "REX.W 0F AB /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Btr_rm16_r16, "btr", "o16 0F B3 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Btr_rm32_r32, "btr", "o32 0F B3 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Btr_rm64_r64, "btr", "REX.W 0F B3 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Btc_rm16_r16, "btc", "o16 0F BB /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Btc_rm32_r32, "btc", "o32 0F BB /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Btc_rm64_r64, "btc", "REX.W 0F BB /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Shld_rm16_r16_imm8, "shld", "o16 0F A4 /r ib", kinds{Op_r16_or_mem, Op_r16_reg, Op_imm8}, MemorySizeUInt16, 0},
	{Shld_rm32_r32_imm8, "shld", "o32 0F A4 /r ib", kinds{Op_r32_or_mem, Op_r32_reg, Op_imm8}, MemorySizeUInt32, 0},
	{Shld_rm64_r64_imm8, "shld", "REX.W 0F A4 /r ib", kinds{Op_r64_or_mem, Op_r64_reg, Op_imm8}, MemorySizeUInt64, 0},
	{Shld_rm16_r16_CL, "shld", "o16 0F A5 /r", kinds{Op_r16_or_mem, Op_r16_reg, Op_cl}, MemorySizeUInt16, 0},
	{Shld_rm32_r32_CL, "shld", "o32 0F A5 /r", kinds{Op_r32_or_mem, Op_r32_reg, Op_cl}, MemorySizeUInt32, 0},
	{Shld_rm64_r64_CL, "shld", "REX.W 0F A5 /r", kinds{Op_r64_or_mem, Op_r64_reg, Op_cl}, MemorySizeUInt64, 0},
	{Shrd_rm16_r16_imm8, "shrd", "o16 0F AC /r ib", kinds{Op_r16_or_mem, Op_r16_reg, Op_imm8}, MemorySizeUInt16, 0},
	{Shrd_rm32_r32_imm8, "shrd", "o32 0F AC /r ib", kinds{Op_r32_or_mem, Op_r32_reg, Op_imm8}, MemorySizeUInt32, 0},
	{Shrd_rm64_r64_imm8, "shrd", "REX.W 0F AC /r ib", kinds{Op_r64_or_mem, Op_r64_reg, Op_imm8}, MemorySizeUInt64, 0},
	{Shrd_rm16_r16_CL, "shrd", "o16 0F AD /r", kinds{Op_r16_or_mem, Op_r16_reg, Op_cl}, MemorySizeUInt16, 0},
	{Shrd_rm32_r32_CL, "shrd", "o32 0F AD /r", kinds{Op_r32_or_mem, Op_r32_reg, Op_cl}, MemorySizeUInt32, 0},
	{Shrd_rm64_r64_CL, "shrd", "REX.W 0F AD /r", kinds{Op_r64_or_mem, Op_r64_reg, Op_cl}, MemorySizeUInt64, 0},
	{Xbts_r16_rm16, "xbts", "o16 !64 +xbts -cmpxchg486a 0F A6 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Xbts_r32_rm32, "xbts", "o32 !64 +xbts -cmpxchg486a 0F A6 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Ibts_rm16_r16, "ibts", "o16 !64 +xbts -cmpxchg486a 0F A7 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, 0},
	{Ibts_rm32_r32, "ibts", "o32 !64 +xbts -cmpxchg486a 0F A7 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Cmpxchg486_rm8_r8, "cmpxchg", "!64 +cmpxchg486a 0F A6 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Cmpxchg486_rm16_r16, "cmpxchg", "o16 !64 +cmpxchg486a 0F A7 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Cmpxchg486_rm32_r32, "cmpxchg", "o32 !64 +cmpxchg486a 0F A7 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Imul_r16_rm16, "imul", "o16 0F AF /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeInt16, 0},
	{Imul_r32_rm32, "imul", "o32 0F AF /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeInt32, 0},
	{Imul_r64_rm64, "imul", "REX.W 0F AF /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeInt64, 0},
	{Cmpxchg_rm8_r8, "cmpxchg", "0F B0 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Cmpxchg_rm16_r16, "cmpxchg", "o16 0F B1 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Cmpxchg_rm32_r32, "cmpxchg", "o32 0F B1 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Cmpxchg_rm64_r64, "cmpxchg", "REX.W 0F B1 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Lss_r16_m1616, "lss", "o16 0F B2 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeSegPtr16, 0},
	{Lss_r32_m1632, "lss", "o32 0F B2 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeSegPtr32, 0},
	{Lss_r64_m1664, "lss", "REX.W 0F B2 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeSegPtr64, 0},
	{Lfs_r16_m1616, "lfs", "o16 0F B4 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeSegPtr16, 0},
	{Lfs_r32_m1632, "lfs", "o32 0F B4 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeSegPtr32, 0},
	{Lfs_r64_m1664, "lfs", "REX.W 0F B4 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeSegPtr64, 0},
	{Lgs_r16_m1616, "lgs", "o16 0F B5 /r", kinds{Op_r16_reg, Op_mem}, MemorySizeSegPtr16, 0},
	{Lgs_r32_m1632, "lgs", "o32 0F B5 /r", kinds{Op_r32_reg, Op_mem}, MemorySizeSegPtr32, 0},
	{Lgs_r64_m1664, "lgs", "REX.W 0F B5 /r", kinds{Op_r64_reg, Op_mem}, MemorySizeSegPtr64, 0},
	{Movzx_r16_rm8, "movzx", "o16 0F B6 /r", kinds{Op_r16_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Movzx_r32_rm8, "movzx", "o32 0F B6 /r", kinds{Op_r32_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Movzx_r64_rm8, "movzx", "REX.W 0F B6 /r", kinds{Op_r64_reg, Op_r8_or_mem}, MemorySizeUInt8, 0},
	{Movzx_r16_rm16, "movzx", "o16 0F B7 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Movzx_r32_rm16, "movzx", "o32 0F B7 /r", kinds{Op_r32_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Movzx_r64_rm16, "movzx", "REX.W 0F B7 /r", kinds{Op_r64_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Movsx_r16_rm8, "movsx", "o16 0F BE /r", kinds{Op_r16_reg, Op_r8_or_mem}, MemorySizeInt8, 0},
	{Movsx_r32_rm8, "movsx", "o32 0F BE /r", kinds{Op_r32_reg, Op_r8_or_mem}, MemorySizeInt8, 0},
	{Movsx_r64_rm8, "movsx", "REX.W 0F BE /r", kinds{Op_r64_reg, Op_r8_or_mem}, MemorySizeInt8, 0},
	{Movsx_r16_rm16, "movsx", "o16 0F BF /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeInt16, 0},
	{Movsx_r32_rm16, "movsx", "o32 0F BF /r", kinds{Op_r32_reg, Op_r16_or_mem}, MemorySizeInt16, 0},
	{Movsx_r64_rm16, "movsx", "REX.W 0F BF /r", kinds{Op_r64_reg, Op_r16_or_mem}, MemorySizeInt16, 0},
	{Popcnt_r16_rm16, "popcnt", "o16 F3 0F B8 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Popcnt_r32_rm32, "popcnt", "o32 F3 0F B8 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Popcnt_r64_rm64, "popcnt", "REX.W F3 0F B8 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Jmpe_disp16, "jmpe", "o16 NP !64 +jmpe 0F B8 cw", kinds{Op_br16_2}, MemorySizeUnknown, 0},
	{Jmpe_disp32, "jmpe", "o32 NP !64 +jmpe 0F B8 cd", kinds{Op_br32_4}, MemorySizeUnknown, 0},
	{Ud1_r16_rm16, "ud1", "o16 0F B9 /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Ud1_r32_rm32, "ud1", "o32 0F B9 /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Ud1_r64_rm64, "ud1", "REX.W 0F B9 /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Bt_rm16_imm8, "bt", "o16 0F BA /4 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, 0},
	{Bt_rm32_imm8, "bt", "o32 0F BA /4 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, 0},
	{Bt_rm64_imm8, "bt", "REX.W 0F BA /4 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, 0},
	{Bts_rm16_imm8, "bts", "o16 0F BA /5 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Bts_rm32_imm8, "bts", "o32 0F BA /5 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Bts_rm64_imm8, "bts", "REX.W 0F BA /5 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Btr_rm16_imm8, "btr", "o16 0F BA /6 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Btr_rm32_imm8, "btr", "o32 0F BA /6 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Btr_rm64_imm8, "btr", "REX.W 0F BA /6 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Btc_rm16_imm8, "btc", "o16 0F BA /7 ib", kinds{Op_r16_or_mem, Op_imm8}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Btc_rm32_imm8, "btc", "o32 0F BA /7 ib", kinds{Op_r32_or_mem, Op_imm8}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Btc_rm64_imm8, "btc", "REX.W 0F BA /7 ib", kinds{Op_r64_or_mem, Op_imm8}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Bsf_r16_rm16, "bsf", "o16 0F BC /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Bsf_r32_rm32, "bsf", "o32 0F BC /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Bsf_r64_rm64, "bsf", "REX.W 0F BC /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Tzcnt_r16_rm16, "tzcnt", "o16 F3 0F BC /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Tzcnt_r32_rm32, "tzcnt", "o32 F3 0F BC /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Tzcnt_r64_rm64, "tzcnt", "REX.W F3 0F BC /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Bsr_r16_rm16, "bsr", "o16 0F BD /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Bsr_r32_rm32, "bsr", "o32 0F BD /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Bsr_r64_rm64, "bsr", "REX.W 0F BD /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Lzcnt_r16_rm16, "lzcnt", "o16 F3 0F BD /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Lzcnt_r32_rm32, "lzcnt", "o32 F3 0F BD /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Lzcnt_r64_rm64, "lzcnt", "REX.W F3 0F BD /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Xadd_rm8_r8, "xadd", "0F C0 /r", kinds{Op_r8_or_mem, Op_r8_reg}, MemorySizeUInt8, flagLock | flagXacquire | flagXrelease},
	{Xadd_rm16_r16, "xadd", "o16 0F C1 /r", kinds{Op_r16_or_mem, Op_r16_reg}, MemorySizeUInt16, flagLock | flagXacquire | flagXrelease},
	{Xadd_rm32_r32, "xadd", "o32 0F C1 /r", kinds{Op_r32_or_mem, Op_r32_reg}, MemorySizeUInt32, flagLock | flagXacquire | flagXrelease},
	{Xadd_rm64_r64, "xadd", "REX.W 0F C1 /r", kinds{Op_r64_or_mem, Op_r64_reg}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Movnti_m32_r32, "movnti", "NP 0F C3 /r", kinds{Op_mem, Op_r32_reg}, MemorySizeUInt32, 0},
	{Movnti_m64_r64, "movnti", "NP REX.W 0F C3 /r", kinds{Op_mem, Op_r64_reg}, MemorySizeUInt64, 0},
	{Cmpxchg8b_m64, "cmpxchg8b", "0F C7 /1", kinds{Op_mem}, MemorySizeUInt64, flagLock | flagXacquire | flagXrelease},
	{Cmpxchg16b_m128, "cmpxchg16b", "REX.W 0F C7 /1", kinds{Op_mem}, MemorySizeUInt128, flagLock | flagXacquire | flagXrelease},
	{Vmptrld_m64, "vmptrld", "NP 0F C7 /6", kinds{Op_mem}, MemorySizeUInt64, 0},
	{Vmclear_m64, "vmclear", "66 0F C7 /6", kinds{Op_mem}, MemorySizeUInt64, 0},
	{Vmxon_m64, "vmxon", "F3 0F C7 /6", kinds{Op_mem}, MemorySizeUInt64, 0},
	{Vmptrst_m64, "vmptrst", "NP 0F C7 /7", kinds{Op_mem}, MemorySizeUInt64, 0},
	{Rdrand_r16, "rdrand", "o16 0F C7 11:110:bbb", kinds{Op_r16_rm}, MemorySizeUnknown, 0},
	{Rdrand_r32, "rdrand", "o32 0F C7 11:110:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Rdrand_r64, "rdrand", "REX.W 0F C7 11:110:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Rdseed_r16, "rdseed", "NP o16 0F C7 11:111:bbb", kinds{Op_r16_rm}, MemorySizeUnknown, 0},
	{Rdseed_r32, "rdseed", "NP o32 0F C7 11:111:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Rdseed_r64, "rdseed", "NP REX.W 0F C7 11:111:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Rdpid_r32, "rdpid", "F3 !64 0F C7 11:111:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Rdpid_r64, "rdpid", "F3 only64 0F C7 11:111:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Bswap_r16, "bswap", "o16 0F C8+rw", kinds{Op_r16_opcode}, MemorySizeUnknown, 0},
	{Bswap_r32, "bswap", "o32 0F C8+rd", kinds{Op_r32_opcode}, MemorySizeUnknown, 0},
	{Bswap_r64, "bswap", "REX.W 0F C8+ro", kinds{Op_r64_opcode}, MemorySizeUnknown, 0},
	{Ud0_r16_rm16, "ud0", "o16 0F FF /r", kinds{Op_r16_reg, Op_r16_or_mem}, MemorySizeUInt16, 0},
	{Ud0_r32_rm32, "ud0", "o32 0F FF /r", kinds{Op_r32_reg, Op_r32_or_mem}, MemorySizeUInt32, 0},
	{Ud0_r64_rm64, "ud0", "REX.W 0F FF /r", kinds{Op_r64_reg, Op_r64_or_mem}, MemorySizeUInt64, 0},
	{Fxsave_m512byte, "fxsave", "NP 0F AE /0", kinds{Op_mem}, MemorySizeFxsave_512Byte, 0},
	{Fxsave64_m512byte, "fxsave64", "NP REX.W 0F AE /0", kinds{Op_mem}, MemorySizeFxsave_512Byte, 0},
	{Fxrstor_m512byte, "fxrstor", "NP 0F AE /1", kinds{Op_mem}, MemorySizeFxsave_512Byte, 0},
	{Fxrstor64_m512byte, "fxrstor64", "NP REX.W 0F AE /1", kinds{Op_mem}, MemorySizeFxsave_512Byte, 0},
	{Ldmxcsr_m32, "ldmxcsr", "NP 0F AE /2", kinds{Op_mem}, MemorySizeUInt32, 0},
	{Stmxcsr_m32, "stmxcsr", "NP 0F AE /3", kinds{Op_mem}, MemorySizeUInt32, 0},
	{Xsave_mem, "xsave", "NP 0F AE /4", kinds{Op_mem}, MemorySizeXsave, 0},
	{Xsave64_mem, "xsave64", "NP REX.W 0F AE /4", kinds{Op_mem}, MemorySizeXsave, 0},
	{Xrstor_mem, "xrstor", "NP 0F AE /5", kinds{Op_mem}, MemorySizeXsave, 0},
	{Xrstor64_mem, "xrstor64", "NP REX.W 0F AE /5", kinds{Op_mem}, MemorySizeXsave, 0},
	{Xsaveopt_mem, "xsaveopt", "NP 0F AE /6", kinds{Op_mem}, MemorySizeXsave, 0},
	{Clflush_m8, "clflush", "NP 0F AE /7", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Clwb_m8, "clwb", "66 0F AE /6", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Clflushopt_m8, "clflushopt", "66 0F AE /7", kinds{Op_mem}, MemorySizeUInt8, 0},
	{Lfence, "lfence", "NP 0F AE 11:101:bbb", kinds{}, MemorySizeUnknown, 0},
	{Mfence, "mfence", "NP 0F AE 11:110:bbb", kinds{}, MemorySizeUnknown, 0},
	{Sfence, "sfence", "NP 0F AE 11:111:bbb", kinds{}, MemorySizeUnknown, 0},
	{Pcommit, "pcommit", "66 +pcommit 0F AE F8", kinds{}, MemorySizeUnknown, 0},
	{Rdfsbase_r32, "rdfsbase", "F3 only64 0F AE 11:000:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Rdfsbase_r64, "rdfsbase", "F3 REX.W 0F AE 11:000:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Rdgsbase_r32, "rdgsbase", "F3 only64 0F AE 11:001:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Rdgsbase_r64, "rdgsbase", "F3 REX.W 0F AE 11:001:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Wrfsbase_r32, "wrfsbase", "F3 only64 0F AE 11:010:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Wrfsbase_r64, "wrfsbase", "F3 REX.W 0F AE 11:010:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Wrgsbase_r32, "wrgsbase", "F3 only64 0F AE 11:011:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Wrgsbase_r64, "wrgsbase", "F3 REX.W 0F AE 11:011:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
	{Incsspd_r32, "incsspd", "F3 0F AE 11:101:bbb", kinds{Op_r32_rm}, MemorySizeUnknown, 0},
	{Incsspq_r64, "incsspq", "F3 REX.W 0F AE 11:101:bbb", kinds{Op_r64_rm}, MemorySizeUnknown, 0},
}
