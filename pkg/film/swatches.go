package film

import "github.com/GyrosOfWar/go-spectral-raytracer/pkg/spectral"

// 24 reference reflectance swatches spanning common surface colors, used
// to fit sensor response matrices. 36 samples each, 380nm to 730nm at
// 10nm spacing.
const (
	swatchLambdaMin  = 380
	swatchLambdaStep = 10
)

var swatchReflectances = [24][36]float32{
	{0.05709, 0.05716, 0.05739, 0.05778, 0.05836, 0.05911, 0.06005, 0.06119, 0.06255, 0.06414, 0.06599, 0.06813, 0.07058, 0.07339, 0.07661, 0.08028, 0.08449, 0.0893, 0.09482, 0.1012, 0.1085, 0.1169, 0.1268, 0.1382, 0.1516, 0.1673, 0.1858, 0.2076, 0.2331, 0.2632, 0.2981, 0.3384, 0.3841, 0.4346, 0.4888, 0.5451, },
	{0.2444, 0.2395, 0.2358, 0.2332, 0.2316, 0.2311, 0.2316, 0.2332, 0.2359, 0.2396, 0.2445, 0.2506, 0.2581, 0.2669, 0.2773, 0.2894, 0.3032, 0.319, 0.3369, 0.3571, 0.3796, 0.4046, 0.432, 0.4617, 0.4937, 0.5274, 0.5624, 0.5982, 0.634, 0.6691, 0.703, 0.735, 0.7648, 0.792, 0.8166, 0.8386, },
	{0.4802, 0.4554, 0.4313, 0.408, 0.3856, 0.3642, 0.344, 0.3248, 0.3068, 0.2898, 0.274, 0.2592, 0.2454, 0.2326, 0.2207, 0.2096, 0.1993, 0.1898, 0.1809, 0.1727, 0.165, 0.1579, 0.1513, 0.1452, 0.1395, 0.1342, 0.1292, 0.1246, 0.1203, 0.1163, 0.1125, 0.109, 0.1057, 0.1026, 0.0997, 0.097, },
	{0.01886, 0.02216, 0.02609, 0.03077, 0.03631, 0.04283, 0.05043, 0.05917, 0.06904, 0.07995, 0.09167, 0.1038, 0.1159, 0.1272, 0.1371, 0.145, 0.1501, 0.1523, 0.1512, 0.147, 0.1399, 0.1306, 0.1197, 0.1078, 0.09557, 0.08366, 0.07246, 0.06223, 0.05312, 0.04516, 0.0383, 0.03245, 0.02751, 0.02335, 0.01986, 0.01693, },
	{0.7573, 0.7133, 0.665, 0.6141, 0.5624, 0.512, 0.4645, 0.4212, 0.3827, 0.3491, 0.3204, 0.2962, 0.2759, 0.2592, 0.2456, 0.2347, 0.2263, 0.2201, 0.216, 0.2138, 0.2134, 0.2149, 0.2183, 0.2236, 0.2311, 0.241, 0.2535, 0.2689, 0.2878, 0.3104, 0.3373, 0.3689, 0.4055, 0.4469, 0.4929, 0.5423, },
	{0.1208, 0.1493, 0.1833, 0.2225, 0.2659, 0.3116, 0.3573, 0.4005, 0.4393, 0.4723, 0.4985, 0.5177, 0.5297, 0.5348, 0.5328, 0.5238, 0.5077, 0.4846, 0.4545, 0.4182, 0.3766, 0.3317, 0.2857, 0.241, 0.1998, 0.1635, 0.1326, 0.107, 0.08635, 0.06979, 0.05662, 0.04617, 0.03788, 0.03127, 0.02599, 0.02173, },
	{0.02079, 0.0232, 0.02597, 0.02919, 0.03294, 0.03732, 0.04246, 0.04854, 0.05574, 0.06433, 0.07461, 0.08696, 0.1018, 0.1197, 0.1413, 0.1672, 0.198, 0.2342, 0.276, 0.323, 0.3743, 0.4283, 0.4832, 0.5367, 0.5873, 0.6335, 0.6747, 0.7108, 0.7421, 0.7689, 0.7918, 0.8113, 0.8279, 0.8421, 0.8542, 0.8645, },
	{0.802, 0.7527, 0.6938, 0.6267, 0.5548, 0.4827, 0.4149, 0.3545, 0.303, 0.2602, 0.2253, 0.1971, 0.1742, 0.1557, 0.1407, 0.1285, 0.1185, 0.1103, 0.1037, 0.09821, 0.09381, 0.09031, 0.0876, 0.08558, 0.08421, 0.08344, 0.08325, 0.08364, 0.08461, 0.08619, 0.08843, 0.0914, 0.09519, 0.09993, 0.1058, 0.1129, },
	{0.4893, 0.3851, 0.3016, 0.2396, 0.1952, 0.1636, 0.1411, 0.125, 0.1135, 0.1055, 0.1002, 0.09716, 0.09612, 0.09701, 0.09989, 0.105, 0.1128, 0.124, 0.1397, 0.1617, 0.1925, 0.2358, 0.2962, 0.378, 0.481, 0.5952, 0.7031, 0.7905, 0.8538, 0.8972, 0.9264, 0.9462, 0.9598, 0.9693, 0.9761, 0.9812, },
	{0.7522, 0.6376, 0.5035, 0.377, 0.2778, 0.2079, 0.1604, 0.1282, 0.1059, 0.09023, 0.07894, 0.07074, 0.06475, 0.06044, 0.05745, 0.05554, 0.05457, 0.05448, 0.05527, 0.05698, 0.05975, 0.06377, 0.06938, 0.07709, 0.08767, 0.1024, 0.1231, 0.153, 0.1968, 0.2616, 0.3547, 0.4767, 0.6115, 0.7317, 0.8206, 0.8796, },
	{0.01148, 0.01436, 0.01817, 0.02327, 0.03021, 0.03972, 0.05292, 0.07128, 0.09675, 0.1315, 0.1771, 0.2335, 0.2977, 0.3634, 0.4239, 0.4736, 0.5099, 0.5317, 0.5392, 0.5324, 0.5114, 0.4759, 0.4268, 0.3668, 0.3011, 0.2367, 0.1798, 0.1336, 0.09832, 0.07242, 0.05373, 0.04031, 0.03063, 0.02359, 0.0184, 0.01453, },
	{0.0173, 0.02028, 0.02392, 0.02839, 0.03392, 0.04078, 0.04936, 0.06013, 0.07368, 0.09073, 0.1121, 0.1387, 0.1712, 0.21, 0.2548, 0.3046, 0.3571, 0.4098, 0.4602, 0.506, 0.546, 0.5796, 0.6068, 0.6279, 0.6432, 0.6532, 0.6581, 0.658, 0.653, 0.6429, 0.6274, 0.6062, 0.5789, 0.5451, 0.5049, 0.459, },
	{0.835, 0.7805, 0.7091, 0.6214, 0.5238, 0.4269, 0.3409, 0.2706, 0.2162, 0.175, 0.144, 0.1206, 0.1027, 0.08884, 0.07796, 0.06931, 0.06235, 0.05669, 0.05206, 0.04823, 0.04505, 0.0424, 0.0402, 0.03836, 0.03684, 0.03558, 0.03457, 0.03378, 0.03317, 0.03275, 0.0325, 0.03242, 0.0325, 0.03275, 0.03317, 0.03376, },
	{0.01141, 0.01431, 0.01814, 0.02323, 0.03004, 0.03919, 0.0515, 0.06792, 0.08945, 0.1168, 0.1498, 0.1871, 0.2255, 0.2608, 0.2887, 0.3061, 0.3109, 0.3025, 0.282, 0.2516, 0.215, 0.1766, 0.1403, 0.1087, 0.08298, 0.06295, 0.04776, 0.0364, 0.02796, 0.02168, 0.01698, 0.01343, 0.01074, 0.008663, 0.007055, 0.005795, },
	{0.1983, 0.1428, 0.1083, 0.08615, 0.07137, 0.06122, 0.05411, 0.04909, 0.0456, 0.04327, 0.0419, 0.04135, 0.04159, 0.04264, 0.04458, 0.04759, 0.05197, 0.05818, 0.06702, 0.07977, 0.09866, 0.1276, 0.1737, 0.2485, 0.3662, 0.5254, 0.6875, 0.8082, 0.8822, 0.925, 0.95, 0.9653, 0.975, 0.9815, 0.9859, 0.989, },
	{0.01049, 0.01286, 0.01594, 0.02, 0.02541, 0.03275, 0.04283, 0.05687, 0.07663, 0.1045, 0.1436, 0.1967, 0.2651, 0.3457, 0.431, 0.5115, 0.5802, 0.6345, 0.6748, 0.703, 0.7209, 0.73, 0.7309, 0.7239, 0.7081, 0.6826, 0.6453, 0.5945, 0.5292, 0.4511, 0.3661, 0.2835, 0.2118, 0.155, 0.1128, 0.08247, },
	{0.9007, 0.8538, 0.7832, 0.6846, 0.565, 0.445, 0.3439, 0.2685, 0.2154, 0.1789, 0.1538, 0.1368, 0.1255, 0.1186, 0.1152, 0.115, 0.1181, 0.1246, 0.1354, 0.1517, 0.1758, 0.2109, 0.2619, 0.3347, 0.4331, 0.5519, 0.6726, 0.774, 0.8475, 0.8966, 0.9284, 0.9492, 0.963, 0.9724, 0.979, 0.9837, },
	{0.1852, 0.2127, 0.2406, 0.2677, 0.2929, 0.3149, 0.3328, 0.3459, 0.3536, 0.3558, 0.3523, 0.3433, 0.3291, 0.3102, 0.2874, 0.2617, 0.2342, 0.2063, 0.1791, 0.1536, 0.1304, 0.1099, 0.09212, 0.07706, 0.06441, 0.05388, 0.04517, 0.03797, 0.03203, 0.02713, 0.02308, 0.01971, 0.01691, 0.01457, 0.0126, 0.01095, },
	{0.8773, 0.8793, 0.8813, 0.8831, 0.8847, 0.8863, 0.8877, 0.889, 0.8902, 0.8913, 0.8922, 0.8931, 0.8939, 0.8946, 0.8952, 0.8957, 0.8961, 0.8964, 0.8966, 0.8968, 0.8969, 0.8968, 0.8967, 0.8965, 0.8963, 0.8959, 0.8955, 0.8949, 0.8943, 0.8936, 0.8928, 0.8918, 0.8908, 0.8897, 0.8885, 0.8871, },
	{0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, 0.5776, },
	{0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, 0.3515, },
	{0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, 0.1946, },
	{0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, 0.09084, },
	{0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, 0.03434, },
}

// swatchSpectrum builds the piecewise-linear spectrum of swatch i
func swatchSpectrum(i int) spectral.Spectrum {
	var lambdas, values [36]float32
	for k := range swatchReflectances[i] {
		lambdas[k] = float32(swatchLambdaMin + k*swatchLambdaStep)
		values[k] = swatchReflectances[i][k]
	}
	return spectral.NewPiecewiseLinear(lambdas[:], values[:])
}
