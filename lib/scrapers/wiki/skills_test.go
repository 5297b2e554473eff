package wiki

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const questPage = `<html><body>
<table class="questdetails">
<tr><th>Requirements</th><td>
  <span class="SkillClickPic">40&#160;<a href="/w/Attack" title="Attack"><img alt="Attack"></a></span>
  <span class="SkillClickPic">50&#160;<a href="/w/Mining" title="Mining"><img alt="Mining"></a></span>
  <span class="SkillClickPic">60&#160;<a href="/w/Mining" title="Mining"><img alt="Mining"></a></span>
  <span class="SkillClickPic">boosted&#160;<a href="/w/Magic" title="Magic"><img alt="Magic"></a></span>
  <span class="SkillClickPic">55&#160;<a href="/w/Slayer"><img alt="Slayer"></a></span>
  <span class="SkillClickPic">&#160;<a href="/w/Ranged" title="Ranged"><img alt="Ranged"></a></span>
</td></tr>
</table>
<p>See also <span class="SkillClickPic">99&#160;<a href="/w/Prayer" title="Prayer"><img alt="Prayer"></a></span> outside any table.</p>
</body></html>`

func TestSkillsFromDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(questPage))
	require.NoError(t, err)

	skills := skillsFromDocument(doc)
	require.Equal(t, map[string]int{
		"attack": 40,
		// repeated markers keep the last level seen
		"mining": 60,
	}, skills)
}

func TestSkillsFromDocumentNoMarkers(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>quest with no skills</p></body></html>"))
	require.NoError(t, err)

	require.Empty(t, skillsFromDocument(doc))
}
