package prevent

// coefficients is one PREVENT equation: intercept plus the weight of every
// transformed predictor. Weights a given endpoint does not use stay zero.
type coefficients struct {
	Intercept  float64
	Age        float64
	AgeSquared float64

	NonHDL      float64
	HDL         float64
	SBPLow      float64
	SBPHigh     float64
	Diabetes    float64
	Smoking     float64
	BMILow      float64
	BMIHigh     float64
	EGFRLow     float64
	EGFRHigh    float64
	BPTreatment float64
	Statin      float64

	BPTreatmentSBPHigh float64
	StatinNonHDL       float64

	AgeNonHDL   float64
	AgeHDL      float64
	AgeSBPHigh  float64
	AgeDiabetes float64
	AgeSmoking  float64
	AgeBMIHigh  float64
	AgeEGFRLow  float64

	// Optional holds the UACR, HbA1c and SDI weights of the full model.
	Optional *optionalCoefficients
}

// optionalCoefficients weights the full-model predictors. Each *Missing value
// is the fixed contribution used when the predictor is not supplied.
type optionalCoefficients struct {
	SDIMid     float64
	SDIHigh    float64
	SDIMissing float64

	UACR        float64
	UACRMissing float64

	HbA1cDiabetes   float64
	HbA1cNoDiabetes float64
	HbA1cMissing    float64
}

type equationKey struct {
	sex      Sex
	endpoint Endpoint
	horizon  Horizon
}

// baseEquations are the PREVENT base model equations.
var baseEquations = map[equationKey]coefficients{
	{Female, CVD, TenYear}: {
		Intercept:          -3.307728,
		Age:                0.7939329,
		NonHDL:             0.0305239,
		HDL:                -0.1606857,
		SBPLow:             -0.2394003,
		SBPHigh:            0.360078,
		Diabetes:           0.8667604,
		Smoking:            0.5360739,
		EGFRLow:            0.6045917,
		EGFRHigh:           0.0433769,
		BPTreatment:        0.3151672,
		Statin:             -0.1477655,
		BPTreatmentSBPHigh: -0.0663612,
		StatinNonHDL:       0.1197879,
		AgeNonHDL:          -0.0819715,
		AgeHDL:             0.0306769,
		AgeSBPHigh:         -0.0946348,
		AgeDiabetes:        -0.27057,
		AgeSmoking:         -0.078715,
		AgeEGFRLow:         -0.1637806,
	},
	{Female, CVD, ThirtyYear}: {
		Intercept:          -1.318827,
		Age:                0.5503079,
		AgeSquared:         -0.0928369,
		NonHDL:             0.0409794,
		HDL:                -0.1663306,
		SBPLow:             -0.1628654,
		SBPHigh:            0.3299505,
		Diabetes:           0.6793894,
		Smoking:            0.3196112,
		EGFRLow:            0.1857101,
		EGFRHigh:           0.0553528,
		BPTreatment:        0.2894,
		Statin:             -0.075688,
		BPTreatmentSBPHigh: -0.056367,
		StatinNonHDL:       0.1071019,
		AgeNonHDL:          -0.0751438,
		AgeHDL:             0.0301786,
		AgeSBPHigh:         -0.0998776,
		AgeDiabetes:        -0.3206166,
		AgeSmoking:         -0.1607862,
		AgeEGFRLow:         -0.1450788,
	},
	{Female, ASCVD, TenYear}: {
		Intercept:          -3.819975,
		Age:                0.719883,
		NonHDL:             0.1176967,
		HDL:                -0.151185,
		SBPLow:             -0.0835358,
		SBPHigh:            0.3592852,
		Diabetes:           0.8348585,
		Smoking:            0.4831078,
		EGFRLow:            0.4864619,
		EGFRHigh:           0.0397779,
		BPTreatment:        0.2265309,
		Statin:             -0.0592374,
		BPTreatmentSBPHigh: -0.0395762,
		StatinNonHDL:       0.0844423,
		AgeNonHDL:          -0.0567839,
		AgeHDL:             0.0325692,
		AgeSBPHigh:         -0.1035985,
		AgeDiabetes:        -0.2417542,
		AgeSmoking:         -0.0791142,
		AgeEGFRLow:         -0.1671492,
	},
	{Female, ASCVD, ThirtyYear}: {
		Intercept:          -1.974074,
		Age:                0.4669202,
		AgeSquared:         -0.0893118,
		NonHDL:             0.1256901,
		HDL:                -0.1542255,
		SBPLow:             -0.0018093,
		SBPHigh:            0.322949,
		Diabetes:           0.6296707,
		Smoking:            0.268292,
		EGFRLow:            0.100106,
		EGFRHigh:           0.0499663,
		BPTreatment:        0.1875292,
		Statin:             0.0152476,
		BPTreatmentSBPHigh: -0.0276123,
		StatinNonHDL:       0.0736147,
		AgeNonHDL:          -0.0521962,
		AgeHDL:             0.0316918,
		AgeSBPHigh:         -0.1046101,
		AgeDiabetes:        -0.2727793,
		AgeSmoking:         -0.1530907,
		AgeEGFRLow:         -0.1299149,
	},
	{Female, HF, TenYear}: {
		Intercept:          -4.310409,
		Age:                0.8998235,
		SBPLow:             -0.4559771,
		SBPHigh:            0.3576505,
		Diabetes:           1.038346,
		Smoking:            0.583916,
		BMILow:             -0.0072294,
		BMIHigh:            0.2997706,
		EGFRLow:            0.7451638,
		EGFRHigh:           0.0557087,
		BPTreatment:        0.3534442,
		BPTreatmentSBPHigh: -0.0981511,
		AgeSBPHigh:         -0.0946663,
		AgeDiabetes:        -0.3581041,
		AgeSmoking:         -0.1159453,
		AgeBMIHigh:         -0.003878,
		AgeEGFRLow:         -0.1884289,
	},
	{Female, HF, ThirtyYear}: {
		Intercept:          -2.881393,
		Age:                0.6254374,
		AgeSquared:         -0.0983038,
		SBPLow:             -0.3919241,
		SBPHigh:            0.3142295,
		Diabetes:           0.8330787,
		Smoking:            0.3438651,
		BMILow:             0.0594874,
		BMIHigh:            0.2525536,
		EGFRLow:            0.2981642,
		EGFRHigh:           0.0667159,
		BPTreatment:        0.333921,
		BPTreatmentSBPHigh: -0.0893177,
		AgeSBPHigh:         -0.0974299,
		AgeDiabetes:        -0.404855,
		AgeSmoking:         -0.1982991,
		AgeBMIHigh:         -0.0035619,
		AgeEGFRLow:         -0.1564215,
	},
	{Male, CVD, TenYear}: {
		Intercept:          -3.031168,
		Age:                0.7688528,
		NonHDL:             0.0736174,
		HDL:                -0.0954431,
		SBPLow:             -0.4347345,
		SBPHigh:            0.3362658,
		Diabetes:           0.7692857,
		Smoking:            0.4386871,
		EGFRLow:            0.5378979,
		EGFRHigh:           0.0164827,
		BPTreatment:        0.288879,
		Statin:             -0.1337349,
		BPTreatmentSBPHigh: -0.0475924,
		StatinNonHDL:       0.150273,
		AgeNonHDL:          -0.0517874,
		AgeHDL:             0.0191169,
		AgeSBPHigh:         -0.1049477,
		AgeDiabetes:        -0.2251948,
		AgeSmoking:         -0.0895067,
		AgeEGFRLow:         -0.1543702,
	},
	{Male, CVD, ThirtyYear}: {
		Intercept:          -1.148204,
		Age:                0.4627309,
		AgeSquared:         -0.0984281,
		NonHDL:             0.0836088,
		HDL:                -0.1029824,
		SBPLow:             -0.2140352,
		SBPHigh:            0.2904325,
		Diabetes:           0.5331276,
		Smoking:            0.2141914,
		EGFRLow:            0.1155556,
		EGFRHigh:           0.0603775,
		BPTreatment:        0.232714,
		Statin:             -0.0272112,
		BPTreatmentSBPHigh: -0.0384488,
		StatinNonHDL:       0.134192,
		AgeNonHDL:          -0.0511759,
		AgeHDL:             0.0165865,
		AgeSBPHigh:         -0.1101437,
		AgeDiabetes:        -0.2585943,
		AgeSmoking:         -0.1566406,
		AgeEGFRLow:         -0.1166776,
	},
	{Male, ASCVD, TenYear}: {
		Intercept:          -3.500655,
		Age:                0.7099847,
		NonHDL:             0.1658663,
		HDL:                -0.1144285,
		SBPLow:             -0.2837212,
		SBPHigh:            0.3239977,
		Diabetes:           0.7189597,
		Smoking:            0.3956973,
		EGFRLow:            0.3690075,
		EGFRHigh:           0.0203619,
		BPTreatment:        0.2036522,
		Statin:             -0.0865581,
		BPTreatmentSBPHigh: -0.0322916,
		StatinNonHDL:       0.114563,
		AgeNonHDL:          -0.0300005,
		AgeHDL:             0.0232747,
		AgeSBPHigh:         -0.0927024,
		AgeDiabetes:        -0.2018525,
		AgeSmoking:         -0.0970527,
		AgeEGFRLow:         -0.1217081,
	},
	{Male, ASCVD, ThirtyYear}: {
		Intercept:          -1.736444,
		Age:                0.3994099,
		AgeSquared:         -0.0937484,
		NonHDL:             0.1744643,
		HDL:                -0.120203,
		SBPLow:             -0.0665117,
		SBPHigh:            0.2753037,
		Diabetes:           0.4790257,
		Smoking:            0.1782635,
		EGFRLow:            -0.0218789,
		EGFRHigh:           0.0602553,
		BPTreatment:        0.1421182,
		Statin:             0.0135996,
		BPTreatmentSBPHigh: -0.0218265,
		StatinNonHDL:       0.1013148,
		AgeNonHDL:          -0.0312619,
		AgeHDL:             0.020673,
		AgeSBPHigh:         -0.0920935,
		AgeDiabetes:        -0.2159947,
		AgeSmoking:         -0.1548811,
		AgeEGFRLow:         -0.0712547,
	},
	{Male, HF, TenYear}: {
		Intercept:          -3.946391,
		Age:                0.8972642,
		SBPLow:             -0.6811466,
		SBPHigh:            0.3634461,
		Diabetes:           0.923776,
		Smoking:            0.5023736,
		BMILow:             -0.0485841,
		BMIHigh:            0.3726929,
		EGFRLow:            0.6926917,
		EGFRHigh:           0.0251827,
		BPTreatment:        0.2980922,
		BPTreatmentSBPHigh: -0.0497731,
		AgeSBPHigh:         -0.1289201,
		AgeDiabetes:        -0.3040924,
		AgeSmoking:         -0.1401688,
		AgeBMIHigh:         0.0068126,
		AgeEGFRLow:         -0.1797778,
	},
	{Male, HF, ThirtyYear}: {
		Intercept:          -2.205379,
		Age:                0.5681541,
		AgeSquared:         -0.1048388,
		SBPLow:             -0.4761564,
		SBPHigh:            0.30324,
		Diabetes:           0.6840338,
		Smoking:            0.2656273,
		BMILow:             0.0833107,
		BMIHigh:            0.26999,
		EGFRLow:            0.2541805,
		EGFRHigh:           0.0638923,
		BPTreatment:        0.2583631,
		BPTreatmentSBPHigh: -0.0391938,
		AgeSBPHigh:         -0.1269124,
		AgeDiabetes:        -0.3273572,
		AgeSmoking:         -0.2043019,
		AgeBMIHigh:         -0.0182831,
		AgeEGFRLow:         -0.1342618,
	},
}

// fullEquations add UACR, HbA1c and SDI to the base predictors.
var fullEquations = map[equationKey]coefficients{
	{Female, CVD, TenYear}: {
		Intercept:          -3.860385,
		Age:                0.7716794,
		NonHDL:             0.0062109,
		HDL:                -0.1547756,
		SBPLow:             -0.1933123,
		SBPHigh:            0.3071217,
		Diabetes:           0.496753,
		Smoking:            0.466605,
		EGFRLow:            0.4780697,
		EGFRHigh:           0.0529077,
		BPTreatment:        0.3034892,
		Statin:             -0.1556524,
		BPTreatmentSBPHigh: -0.0667026,
		StatinNonHDL:       0.1061825,
		AgeNonHDL:          -0.0742271,
		AgeHDL:             0.0288245,
		AgeSBPHigh:         -0.0875188,
		AgeDiabetes:        -0.2267102,
		AgeSmoking:         -0.0676125,
		AgeEGFRLow:         -0.1493231,
		Optional: &optionalCoefficients{
			SDIMid:          0.1361989,
			SDIHigh:         0.2261596,
			SDIMissing:      0.1804508,
			UACR:            0.1645922,
			UACRMissing:     0.0198413,
			HbA1cDiabetes:   0.1298513,
			HbA1cNoDiabetes: 0.1412555,
			HbA1cMissing:    -0.0031658,
		},
	},
	{Female, CVD, ThirtyYear}: {
		Intercept:          -1.748475,
		Age:                0.5073749,
		AgeSquared:         -0.0981751,
		NonHDL:             0.0162303,
		HDL:                -0.1617147,
		SBPLow:             -0.1111241,
		SBPHigh:            0.2744409,
		Diabetes:           0.3507096,
		Smoking:            0.3040262,
		EGFRLow:            0.1809604,
		EGFRHigh:           0.0618355,
		BPTreatment:        0.2791553,
		Statin:             -0.0853324,
		BPTreatmentSBPHigh: -0.0637848,
		StatinNonHDL:       0.0829911,
		AgeNonHDL:          -0.0671395,
		AgeHDL:             0.0314337,
		AgeSBPHigh:         -0.0905726,
		AgeDiabetes:        -0.2734196,
		AgeSmoking:         -0.1423079,
		AgeEGFRLow:         -0.1329306,
		Optional: &optionalCoefficients{
			SDIMid:          0.1059755,
			SDIHigh:         0.1980599,
			SDIMissing:      0.1376395,
			UACR:            0.1438426,
			UACRMissing:     0.0232064,
			HbA1cDiabetes:   0.1277059,
			HbA1cNoDiabetes: 0.1401767,
			HbA1cMissing:    0.0062939,
		},
	},
	{Female, ASCVD, TenYear}: {
		Intercept:          -4.291503,
		Age:                0.7023067,
		NonHDL:             0.0898765,
		HDL:                -0.1407316,
		SBPLow:             -0.0256648,
		SBPHigh:            0.314511,
		Diabetes:           0.5165013,
		Smoking:            0.4375259,
		EGFRLow:            0.3809251,
		EGFRHigh:           0.0376669,
		BPTreatment:        0.2320405,
		Statin:             -0.0702214,
		BPTreatmentSBPHigh: -0.0398496,
		StatinNonHDL:       0.0820816,
		AgeNonHDL:          -0.0527631,
		AgeHDL:             0.0310354,
		AgeSBPHigh:         -0.0961409,
		AgeDiabetes:        -0.2009377,
		AgeSmoking:         -0.0697744,
		AgeEGFRLow:         -0.1422924,
		Optional: &optionalCoefficients{
			SDIMid:          0.1413965,
			SDIHigh:         0.228136,
			SDIMissing:      0.1588908,
			UACR:            0.1371824,
			UACRMissing:     0.0061613,
			HbA1cDiabetes:   0.123192,
			HbA1cNoDiabetes: 0.1410572,
			HbA1cMissing:    0.005866,
		},
	},
	{Female, ASCVD, ThirtyYear}: {
		Intercept:          -2.314066,
		Age:                0.4477272,
		AgeSquared:         -0.0899323,
		NonHDL:             0.1079085,
		HDL:                -0.1477105,
		SBPLow:             0.0200213,
		SBPHigh:            0.2795366,
		Diabetes:           0.3898311,
		Smoking:            0.2570108,
		EGFRLow:            0.1066694,
		EGFRHigh:           0.0505346,
		BPTreatment:        0.1898026,
		Statin:             0.0025312,
		BPTreatmentSBPHigh: -0.0280452,
		StatinNonHDL:       0.0733934,
		AgeNonHDL:          -0.0493425,
		AgeHDL:             0.0319749,
		AgeSBPHigh:         -0.1008549,
		AgeDiabetes:        -0.2448305,
		AgeSmoking:         -0.1374451,
		AgeEGFRLow:         -0.1257373,
		Optional: &optionalCoefficients{
			SDIMid:          0.1124281,
			SDIHigh:         0.2031213,
			SDIMissing:      0.1237163,
			UACR:            0.1228493,
			UACRMissing:     0.0046541,
			HbA1cDiabetes:   0.1180015,
			HbA1cNoDiabetes: 0.1437818,
			HbA1cMissing:    0.0162021,
		},
	},
	{Female, HF, TenYear}: {
		Intercept:          -4.896524,
		Age:                0.884209,
		SBPLow:             -0.421474,
		SBPHigh:            0.3002919,
		Diabetes:           0.6170359,
		Smoking:            0.5380269,
		BMILow:             -0.0191335,
		BMIHigh:            0.2764302,
		EGFRLow:            0.5975847,
		EGFRHigh:           0.0654197,
		BPTreatment:        0.3313614,
		BPTreatmentSBPHigh: -0.1002304,
		AgeSBPHigh:         -0.0845363,
		AgeDiabetes:        -0.2989635,
		AgeSmoking:         -0.104621,
		AgeBMIHigh:         -0.0006079,
		AgeEGFRLow:         -0.1665608,
		Optional: &optionalCoefficients{
			SDIMid:          0.1213034,
			SDIHigh:         0.2314553,
			SDIMissing:      0.1819138,
			UACR:            0.1948135,
			UACRMissing:     0.0395368,
			HbA1cDiabetes:   0.176668,
			HbA1cNoDiabetes: 0.1614911,
			HbA1cMissing:    -0.0010583,
		},
	},
	{Female, HF, ThirtyYear}: {
		Intercept:          -3.255571,
		Age:                0.6197016,
		AgeSquared:         -0.1007281,
		SBPLow:             -0.3654307,
		SBPHigh:            0.2706937,
		Diabetes:           0.4654297,
		Smoking:            0.3558209,
		BMILow:             0.053963,
		BMIHigh:            0.2372014,
		EGFRLow:            0.2773498,
		EGFRHigh:           0.0661013,
		BPTreatment:        0.314658,
		BPTreatmentSBPHigh: -0.0930683,
		AgeSBPHigh:         -0.0766616,
		AgeDiabetes:        -0.3596107,
		AgeSmoking:         -0.1739826,
		AgeBMIHigh:         -0.0154127,
		AgeEGFRLow:         -0.1392553,
		Optional: &optionalCoefficients{
			SDIMid:          0.1163226,
			SDIHigh:         0.2124837,
			SDIMissing:      0.1613211,
			UACR:            0.1661932,
			UACRMissing:     0.0243468,
			HbA1cDiabetes:   0.1585745,
			HbA1cNoDiabetes: 0.1613211,
			HbA1cMissing:    0.0016221,
		},
	},
	{Male, CVD, TenYear}: {
		Intercept:          -3.631387,
		Age:                0.7847578,
		NonHDL:             0.0534485,
		HDL:                -0.0911282,
		SBPLow:             -0.4921973,
		SBPHigh:            0.2972415,
		Diabetes:           0.4527054,
		Smoking:            0.3726641,
		EGFRLow:            0.3886854,
		EGFRHigh:           0.0081661,
		BPTreatment:        0.2508052,
		Statin:             -0.1538484,
		BPTreatmentSBPHigh: -0.0474695,
		StatinNonHDL:       0.1415382,
		AgeNonHDL:          -0.0436455,
		AgeHDL:             0.0199549,
		AgeSBPHigh:         -0.1022686,
		AgeDiabetes:        -0.1762507,
		AgeSmoking:         -0.0715873,
		AgeEGFRLow:         -0.1428668,
		Optional: &optionalCoefficients{
			SDIMid:          0.0802431,
			SDIHigh:         0.275073,
			SDIMissing:      0.144759,
			UACR:            0.1772853,
			UACRMissing:     0.0916752,
			HbA1cDiabetes:   0.1165698,
			HbA1cNoDiabetes: 0.1048297,
			HbA1cMissing:    -0.0275743,
		},
	},
	{Male, CVD, ThirtyYear}: {
		Intercept:          -1.504558,
		Age:                0.427358,
		AgeSquared:         -0.0973193,
		NonHDL:             0.0726726,
		HDL:                -0.0972224,
		SBPLow:             -0.2563015,
		SBPHigh:            0.2628327,
		Diabetes:           0.3161745,
		Smoking:            0.1880547,
		EGFRLow:            0.0718488,
		EGFRHigh:           0.0563474,
		BPTreatment:        0.2093541,
		Statin:             -0.0369946,
		BPTreatmentSBPHigh: -0.0384466,
		StatinNonHDL:       0.1348212,
		AgeNonHDL:          -0.0459452,
		AgeHDL:             0.0173012,
		AgeSBPHigh:         -0.1065066,
		AgeDiabetes:        -0.2263006,
		AgeSmoking:         -0.1355013,
		AgeEGFRLow:         -0.1004493,
		Optional: &optionalCoefficients{
			SDIMid:          0.0664262,
			SDIHigh:         0.2302547,
			SDIMissing:      0.1187468,
			UACR:            0.1431862,
			UACRMissing:     0.0960946,
			HbA1cDiabetes:   0.1030006,
			HbA1cNoDiabetes: 0.0907567,
			HbA1cMissing:    -0.0233447,
		},
	},
	{Male, ASCVD, TenYear}: {
		Intercept:          -3.969788,
		Age:                0.7128741,
		NonHDL:             0.1465201,
		HDL:                -0.1125794,
		SBPLow:             -0.1830509,
		SBPHigh:            0.2797452,
		Diabetes:           0.4541046,
		Smoking:            0.3616779,
		EGFRLow:            0.2829175,
		EGFRHigh:           0.0144587,
		BPTreatment:        0.1820263,
		Statin:             -0.0847142,
		BPTreatmentSBPHigh: -0.0300512,
		StatinNonHDL:       0.1118963,
		AgeNonHDL:          -0.0212584,
		AgeHDL:             0.0246019,
		AgeSBPHigh:         -0.0856964,
		AgeDiabetes:        -0.1830402,
		AgeSmoking:         -0.0829627,
		AgeEGFRLow:         -0.1103318,
		Optional: &optionalCoefficients{
			SDIMid:          0.0651121,
			SDIHigh:         0.2386051,
			SDIMissing:      0.1283256,
			UACR:            0.1376335,
			UACRMissing:     0.0694147,
			HbA1cDiabetes:   0.1136787,
			HbA1cNoDiabetes: 0.0795354,
			HbA1cMissing:    -0.0050578,
		},
	},
	{Male, ASCVD, ThirtyYear}: {
		Intercept:          -2.054283,
		Age:                0.3653264,
		AgeSquared:         -0.0907823,
		NonHDL:             0.1528726,
		HDL:                -0.1162216,
		SBPLow:             -0.1037479,
		SBPHigh:            0.2496186,
		Diabetes:           0.3253271,
		Smoking:            0.1710962,
		EGFRLow:            -0.0276264,
		EGFRHigh:           0.0568788,
		BPTreatment:        0.136012,
		Statin:             0.0102286,
		BPTreatmentSBPHigh: -0.0222659,
		StatinNonHDL:       0.0959396,
		AgeNonHDL:          -0.0254969,
		AgeHDL:             0.0207994,
		AgeSBPHigh:         -0.0852683,
		AgeDiabetes:        -0.1956318,
		AgeSmoking:         -0.1296683,
		AgeEGFRLow:         -0.0667305,
		Optional: &optionalCoefficients{
			SDIMid:          0.0511398,
			SDIHigh:         0.2056113,
			SDIMissing:      0.1062958,
			UACR:            0.1125458,
			UACRMissing:     0.0709478,
			HbA1cDiabetes:   0.0953524,
			HbA1cNoDiabetes: 0.0754546,
			HbA1cMissing:    -0.0076479,
		},
	},
	{Male, HF, TenYear}: {
		Intercept:          -4.663513,
		Age:                0.9095703,
		SBPLow:             -0.6765184,
		SBPHigh:            0.3111651,
		Diabetes:           0.5535052,
		Smoking:            0.4326811,
		BMILow:             -0.0854286,
		BMIHigh:            0.3551736,
		EGFRLow:            0.5102245,
		EGFRHigh:           0.015472,
		BPTreatment:        0.2570964,
		BPTreatmentSBPHigh: -0.0591177,
		AgeSBPHigh:         -0.1219056,
		AgeDiabetes:        -0.2437577,
		AgeSmoking:         -0.105363,
		AgeBMIHigh:         0.0037907,
		AgeEGFRLow:         -0.1660207,
		Optional: &optionalCoefficients{
			SDIMid:          0.1030213,
			SDIHigh:         0.2788478,
			SDIMissing:      0.1626466,
			UACR:            0.2139553,
			UACRMissing:     0.1567815,
			HbA1cDiabetes:   0.1852144,
			HbA1cNoDiabetes: 0.1560802,
			HbA1cMissing:    0.0304648,
		},
	},
	{Male, HF, ThirtyYear}: {
		Intercept:          -2.916223,
		Age:                0.5714478,
		AgeSquared:         -0.1007138,
		SBPLow:             -0.6006155,
		SBPHigh:            0.2748963,
		Diabetes:           0.4224318,
		Smoking:            0.2517103,
		BMILow:             0.0604094,
		BMIHigh:            0.2657745,
		EGFRLow:            0.2216045,
		EGFRHigh:           0.0539813,
		BPTreatment:        0.2352802,
		BPTreatmentSBPHigh: -0.0426733,
		AgeSBPHigh:         -0.1167326,
		AgeDiabetes:        -0.2836431,
		AgeSmoking:         -0.183178,
		AgeBMIHigh:         -0.0223306,
		AgeEGFRLow:         -0.1214016,
		Optional: &optionalCoefficients{
			SDIMid:          0.0775779,
			SDIHigh:         0.2293127,
			SDIMissing:      0.1374969,
			UACR:            0.1675318,
			UACRMissing:     0.1279163,
			HbA1cDiabetes:   0.1598017,
			HbA1cNoDiabetes: 0.1195546,
			HbA1cMissing:    0.0226693,
		},
	},
}
