// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// x87Forms describes the x87 floating-point instructions, opcodes D8 to DF.
var x87Forms = [...]form{
	{Fadd_m32fp, "fadd", "D8 /0", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fadd_st0_sti, "fadd", "D8 C0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fmul_m32fp, "fmul", "D8 /1", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fmul_st0_sti, "fmul", "D8 C8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcom_m32fp, "fcom", "D8 /2", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fcom_st0_sti, "fcom", "D8 D0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcomp_m32fp, "fcomp", "D8 /3", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fcomp_st0_sti, "fcomp", "D8 D8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fsub_m32fp, "fsub", "D8 /4", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fsub_st0_sti, "fsub", "D8 E0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fsubr_m32fp, "fsubr", "D8 /5", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fsubr_st0_sti, "fsubr", "D8 E8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fdiv_m32fp, "fdiv", "D8 /6", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fdiv_st0_sti, "fdiv", "D8 F0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fdivr_m32fp, "fdivr", "D8 /7", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fdivr_st0_sti, "fdivr", "D8 F8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fld_m32fp, "fld", "D9 /0", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fst_m32fp, "fst", "D9 /2", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fstp_m32fp, "fstp", "D9 /3", kinds{Op_mem}, MemorySizeFloat32, 0},
	{Fldenv_m14byte, "fldenv", "o16 D9 /4", kinds{Op_mem}, MemorySizeFpuEnv14, 0},
	{Fldenv_m28byte, "fldenv", "D9 /4", kinds{Op_mem}, MemorySizeFpuEnv28, 0},
	{Fldcw_m2byte, "fldcw", "D9 /5", kinds{Op_mem}, MemorySizeUInt16, 0},
	{Fnstenv_m14byte, "fnstenv", "o16 D9 /6", kinds{Op_mem}, MemorySizeFpuEnv14, 0},
	{Fnstenv_m28byte, "fnstenv", "D9 /6", kinds{Op_mem}, MemorySizeFpuEnv28, 0},
	{Fnstcw_m2byte, "fnstcw", "D9 /7", kinds{Op_mem}, MemorySizeUInt16, 0},
	{Fld_sti, "fld", "D9 C0+i", kinds{Op_sti}, MemorySizeUnknown, 0},
	{Fxch_st0_sti, "fxch", "D9 C8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fnop, "fnop", "D9 D0", kinds{}, MemorySizeUnknown, 0},
	{Fchs, "fchs", "D9 E0", kinds{}, MemorySizeUnknown, 0},
	{Fabs, "fabs", "D9 E1", kinds{}, MemorySizeUnknown, 0},
	{Ftst, "ftst", "D9 E4", kinds{}, MemorySizeUnknown, 0},
	{Fxam, "fxam", "D9 E5", kinds{}, MemorySizeUnknown, 0},
	{Fld1, "fld1", "D9 E8", kinds{}, MemorySizeUnknown, 0},
	{Fldl2t, "fldl2t", "D9 E9", kinds{}, MemorySizeUnknown, 0},
	{Fldl2e, "fldl2e", "D9 EA", kinds{}, MemorySizeUnknown, 0},
	{Fldpi, "fldpi", "D9 EB", kinds{}, MemorySizeUnknown, 0},
	{Fldlg2, "fldlg2", "D9 EC", kinds{}, MemorySizeUnknown, 0},
	{Fldln2, "fldln2", "D9 ED", kinds{}, MemorySizeUnknown, 0},
	{Fldz, "fldz", "D9 EE", kinds{}, MemorySizeUnknown, 0},
	{F2xm1, "f2xm1", "D9 F0", kinds{}, MemorySizeUnknown, 0},
	{Fyl2x, "fyl2x", "D9 F1", kinds{}, MemorySizeUnknown, 0},
	{Fptan, "fptan", "D9 F2", kinds{}, MemorySizeUnknown, 0},
	{Fpatan, "fpatan", "D9 F3", kinds{}, MemorySizeUnknown, 0},
	{Fxtract, "fxtract", "D9 F4", kinds{}, MemorySizeUnknown, 0},
	{Fprem1, "fprem1", "D9 F5", kinds{}, MemorySizeUnknown, 0},
	{Fdecstp, "fdecstp", "D9 F6", kinds{}, MemorySizeUnknown, 0},
	{Fincstp, "fincstp", "D9 F7", kinds{}, MemorySizeUnknown, 0},
	{Fprem, "fprem", "D9 F8", kinds{}, MemorySizeUnknown, 0},
	{Fyl2xp1, "fyl2xp1", "D9 F9", kinds{}, MemorySizeUnknown, 0},
	{Fsqrt, "fsqrt", "D9 FA", kinds{}, MemorySizeUnknown, 0},
	{Fsincos, "fsincos", "D9 FB", kinds{}, MemorySizeUnknown, 0},
	{Frndint, "frndint", "D9 FC", kinds{}, MemorySizeUnknown, 0},
	{Fscale, "fscale", "D9 FD", kinds{}, MemorySizeUnknown, 0},
	{Fsin, "fsin", "D9 FE", kinds{}, MemorySizeUnknown, 0},
	{Fcos, "fcos", "D9 FF", kinds{}, MemorySizeUnknown, 0},
	{Fiadd_m32int, "fiadd", "DA /0", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fimul_m32int, "fimul", "DA /1", kinds{Op_mem}, MemorySizeInt32, 0},
	{Ficom_m32int, "ficom", "DA /2", kinds{Op_mem}, MemorySizeInt32, 0},
	{Ficomp_m32int, "ficomp", "DA /3", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fisub_m32int, "fisub", "DA /4", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fisubr_m32int, "fisubr", "DA /5", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fidiv_m32int, "fidiv", "DA /6", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fidivr_m32int, "fidivr", "DA /7", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fcmovb_st0_sti, "fcmovb", "DA C0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcmove_st0_sti, "fcmove", "DA C8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcmovbe_st0_sti, "fcmovbe", "DA D0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcmovu_st0_sti, "fcmovu", "DA D8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fucompp, "fucompp", "DA E9", kinds{}, MemorySizeUnknown, 0},
	{Fild_m32int, "fild", "DB /0", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fisttp_m32int, "fisttp", "DB /1", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fist_m32int, "fist", "DB /2", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fistp_m32int, "fistp", "DB /3", kinds{Op_mem}, MemorySizeInt32, 0},
	{Fld_m80fp, "fld", "DB /5", kinds{Op_mem}, MemorySizeFloat80, 0},
	{Fstp_m80fp, "fstp", "DB /7", kinds{Op_mem}, MemorySizeFloat80, 0},
	{Fcmovnb_st0_sti, "fcmovnb", "DB C0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcmovne_st0_sti, "fcmovne", "DB C8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcmovnbe_st0_sti, "fcmovnbe", "DB D0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcmovnu_st0_sti, "fcmovnu", "DB D8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fneni, "fneni", "+oldfpu DB E0", kinds{}, MemorySizeUnknown, 0},
	{Fndisi, "fndisi", "+oldfpu DB E1", kinds{}, MemorySizeUnknown, 0},
	{Fnclex, "fnclex", "DB E2", kinds{}, MemorySizeUnknown, 0},
	{Fninit, "fninit", "DB E3", kinds{}, MemorySizeUnknown, 0},
	{Fnsetpm, "fnsetpm", "+oldfpu DB E4", kinds{}, MemorySizeUnknown, 0},
	{Frstpm, "frstpm", "+oldfpu DB E5", kinds{}, MemorySizeUnknown, 0},
	{Fucomi_st0_sti, "fucomi", "DB E8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcomi_st0_sti, "fcomi", "DB F0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fadd_m64fp, "fadd", "DC /0", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fmul_m64fp, "fmul", "DC /1", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fcom_m64fp, "fcom", "DC /2", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fcomp_m64fp, "fcomp", "DC /3", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fsub_m64fp, "fsub", "DC /4", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fsubr_m64fp, "fsubr", "DC /5", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fdiv_m64fp, "fdiv", "DC /6", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fdivr_m64fp, "fdivr", "DC /7", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fadd_sti_st0, "fadd", "DC C0+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fmul_sti_st0, "fmul", "DC C8+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fsubr_sti_st0, "fsubr", "DC E0+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fsub_sti_st0, "fsub", "DC E8+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fdivr_sti_st0, "fdivr", "DC F0+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fdiv_sti_st0, "fdiv", "DC F8+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fld_m64fp, "fld", "DD /0", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fisttp_m64int, "fisttp", "DD /1", kinds{Op_mem}, MemorySizeInt64, 0},
	{Fst_m64fp, "fst", "DD /2", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Fstp_m64fp, "fstp", "DD /3", kinds{Op_mem}, MemorySizeFloat64, 0},
	{Frstor_m94byte, "frstor", "o16 DD /4", kinds{Op_mem}, MemorySizeFpuState94, 0},
	{Frstor_m108byte, "frstor", "DD /4", kinds{Op_mem}, MemorySizeFpuState108, 0},
	{Fnsave_m94byte, "fnsave", "o16 DD /6", kinds{Op_mem}, MemorySizeFpuState94, 0},
	{Fnsave_m108byte, "fnsave", "DD /6", kinds{Op_mem}, MemorySizeFpuState108, 0},
	{Fnstsw_m2byte, "fnstsw", "DD /7", kinds{Op_mem}, MemorySizeUInt16, 0},
	{Ffree_sti, "ffree", "DD C0+i", kinds{Op_sti}, MemorySizeUnknown, 0},
	{Fst_sti, "fst", "DD D0+i", kinds{Op_sti}, MemorySizeUnknown, 0},
	{Fstp_sti, "fstp", "DD D8+i", kinds{Op_sti}, MemorySizeUnknown, 0},
	{Fucom_st0_sti, "fucom", "DD E0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fucomp_st0_sti, "fucomp", "DD E8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fiadd_m16int, "fiadd", "DE /0", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fimul_m16int, "fimul", "DE /1", kinds{Op_mem}, MemorySizeInt16, 0},
	{Ficom_m16int, "ficom", "DE /2", kinds{Op_mem}, MemorySizeInt16, 0},
	{Ficomp_m16int, "ficomp", "DE /3", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fisub_m16int, "fisub", "DE /4", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fisubr_m16int, "fisubr", "DE /5", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fidiv_m16int, "fidiv", "DE /6", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fidivr_m16int, "fidivr", "DE /7", kinds{Op_mem}, MemorySizeInt16, 0},
	{Faddp_sti_st0, "faddp", "DE C0+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fmulp_sti_st0, "fmulp", "DE C8+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fsubrp_sti_st0, "fsubrp", "DE E0+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fsubp_sti_st0, "fsubp", "DE E8+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fdivrp_sti_st0, "fdivrp", "DE F0+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fdivp_sti_st0, "fdivp", "DE F8+i", kinds{Op_sti, Op_st0}, MemorySizeUnknown, 0},
	{Fcompp, "fcompp", "DE D9", kinds{}, MemorySizeUnknown, 0},
	{Fild_m16int, "fild", "DF /0", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fisttp_m16int, "fisttp", "DF /1", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fist_m16int, "fist", "DF /2", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fistp_m16int, "fistp", "DF /3", kinds{Op_mem}, MemorySizeInt16, 0},
	{Fbld_m80bcd, "fbld", "DF /4", kinds{Op_mem}, MemorySizeBcd, 0},
	{Fild_m64int, "fild", "DF /5", kinds{Op_mem}, MemorySizeInt64, 0},
	{Fbstp_m80bcd, "fbstp", "DF /6", kinds{Op_mem}, MemorySizeBcd, 0},
	{Fistp_m64int, "fistp", "DF /7", kinds{Op_mem}, MemorySizeInt64, 0},
	{Ffreep_sti, "ffreep", "DF C0+i", kinds{Op_sti}, MemorySizeUnknown, 0},
	{Fnstsw_AX, "fnstsw", "DF E0", kinds{Op_ax}, MemorySizeUnknown, 0},
	{Fucomip_st0_sti, "fucomip", "DF E8+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
	{Fcomip_st0_sti, "fcomip", "DF F0+i", kinds{Op_st0, Op_sti}, MemorySizeUnknown, 0},
}
