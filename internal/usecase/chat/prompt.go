package chat

import "fmt"

// citationMarker is the literal footer line the model is instructed to
// emit. extractCitations parses exactly this form; changing one side of
// the contract requires changing the other.
const citationMarker = "KULLANILAN BÖLÜMLER:"

const noEvidenceMessage = "Üzgünüm, bu soruya cevap verebilmek için gerekli bilgileri vektör veritabanımda bulamadım.\n\nLütfen önce ilgili web sitelerini ekleyin. Ardından bu sorularınızı yeniden sorabilirsiniz."

const promptTemplate = `Sen uzman bir döküman asistanısın. Verilen döküman içeriğinden faydalanarak kullanıcının sorularını yanıtlıyorsun.

GÖREVIN:
- Aşağıdaki numaralı döküman bölümlerini incele
- Kullanıcının sorusuna cevap verebilecek bölümleri belirle
- Sadece ilgili bölümlerdeki bilgileri kullanarak yanıt ver
- Yanıtının sonunda hangi bölümleri kullandığını belirt

DÖKÜMAN BÖLÜMLER:
%s

SORU: %s

YANITINIZ:
[Cevabınız burada]

KULLANILAN BÖLÜMLER: [Sadece kullandığınız bölüm numaralarını yazın, örn: 1,3]`

// buildPrompt embeds the numbered context and the question into the fixed
// instruction block.
func buildPrompt(question, contextText string) string {
	return fmt.Sprintf(promptTemplate, contextText, question)
}
